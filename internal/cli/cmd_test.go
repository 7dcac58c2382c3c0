package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/config"
	"github.com/alexanderramin/liftlog/internal/service"
	"github.com/alexanderramin/liftlog/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)
	cliNow      = time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	clock := func() time.Time { return cliNow }
	app := NewApp(database, &config.Config{},
		service.WithClock(clock),
		service.WithIDGenerator(testutil.SeqIDs("id")),
	)
	app.Now = clock
	app.IsInteractive = func() bool { return false }
	return app
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansiPattern.ReplaceAllString(buf.String(), ""), err
}

func mustExec(t *testing.T, app *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, app, args...)
	require.NoError(t, err, "liftlog %v: %s", args, out)
	return out
}

func loggedInApp(t *testing.T) *App {
	t.Helper()
	app := testApp(t)
	mustExec(t, app, "user", "register", "Alice")
	return app
}

func TestUserCmd_RegisterAndWhoami(t *testing.T) {
	app := testApp(t)

	out := mustExec(t, app, "user", "register", "Alice")
	assert.Contains(t, out, "Registered Alice and logged in.")

	out = mustExec(t, app, "user", "whoami")
	assert.Equal(t, "Alice\n", out)

	mustExec(t, app, "user", "logout")
	out = mustExec(t, app, "user", "whoami")
	assert.Contains(t, out, "Not logged in.")
}

func TestWorkoutCmd_RequiresUser(t *testing.T) {
	app := testApp(t)
	_, err := executeCmd(t, app, "workout", "show")
	assert.ErrorIs(t, err, service.ErrNoActiveUser)
}

func TestWorkoutCmd_ShowWithoutDraft(t *testing.T) {
	app := loggedInApp(t)
	_, err := executeCmd(t, app, "workout", "show")
	assert.ErrorIs(t, err, errNoDraft)
}

func TestWorkoutCmd_StartUnknownProgram(t *testing.T) {
	app := loggedInApp(t)
	_, err := executeCmd(t, app, "workout", "start", "day99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown program "day99"`)
}

func TestWorkoutCmd_StartTwiceKeepsDraft(t *testing.T) {
	app := loggedInApp(t)

	out := mustExec(t, app, "workout", "start", "day1")
	assert.Contains(t, out, "Day 1: Shoulders + Chest (Push)")
	assert.Contains(t, out, "1. Lateral raise")
	assert.NotContains(t, out, "already open")

	out = mustExec(t, app, "workout", "start", "day2")
	assert.Contains(t, out, "A workout is already open.")
	assert.Contains(t, out, "Day 1: Shoulders + Chest (Push)")
}

func TestWorkoutCmd_LogFinishAndReport(t *testing.T) {
	app := loggedInApp(t)
	mustExec(t, app, "workout", "start", "day1")

	out := mustExec(t, app, "workout", "log", "1", "2", "12,5", "12")
	assert.Contains(t, out, "Lateral raise set 2")
	assert.Contains(t, out, "Top set")
	assert.Contains(t, out, "12.5 x 12")
	assert.Contains(t, out, "✔")

	out = mustExec(t, app, "workout", "set", "2", "2", "weight", "80")
	assert.Contains(t, out, "80 x --")
	assert.Contains(t, out, "○")

	out = mustExec(t, app, "workout", "log", "d1_2", "3", "80", "8", "1")
	assert.Contains(t, out, "80 x 8  RIR 1")

	out = mustExec(t, app, "workout", "finish")
	assert.Contains(t, out, "Saved Day 1: Shoulders + Chest (Push): 2 sets logged.")

	_, err := executeCmd(t, app, "workout", "show")
	assert.ErrorIs(t, err, errNoDraft)

	out = mustExec(t, app, "history")
	assert.Contains(t, out, "Day 1: Shoulders + Chest (Push)")
	assert.Contains(t, out, "Today")

	out = mustExec(t, app, "history", "show", "1")
	assert.Contains(t, out, "Lateral raise")
	assert.Contains(t, out, "Incline machine press")
	assert.NotContains(t, out, "Bench press")

	out = mustExec(t, app, "progress")
	assert.Contains(t, out, "Incline machine press")

	out = mustExec(t, app, "progress", "chest_6")
	assert.Contains(t, out, "INCLINE MACHINE PRESS")
	assert.Contains(t, out, "E1RM")

	out = mustExec(t, app, "export", "csv")
	assert.Equal(t,
		"Date,Program,Exercise,SetType,Weight,Reps,RIR\n"+
			"2024-03-15,Day 1: Shoulders + Chest (Push),Lateral raise,Top set,12.5,12,\n"+
			"2024-03-15,Day 1: Shoulders + Chest (Push),Incline machine press,Top set,80,8,1\n",
		out)

	out = mustExec(t, app, "export", "top-sets")
	assert.Contains(t, out, "TOP SETS")
	assert.Contains(t, out, "Incline machine press")
}

func TestWorkoutCmd_NextStartShowsLastPerformance(t *testing.T) {
	app := loggedInApp(t)
	mustExec(t, app, "workout", "start", "day1")
	mustExec(t, app, "workout", "log", "2", "2", "80", "8")
	mustExec(t, app, "workout", "finish")

	out := mustExec(t, app, "workout", "start", "day1")
	assert.Contains(t, out, "last: 80 x 8")
}

func TestWorkoutCmd_AddRemoveAndToggleSets(t *testing.T) {
	app := loggedInApp(t)
	mustExec(t, app, "workout", "start", "day1")

	out := mustExec(t, app, "workout", "add-set", "1", "--kind", "ramp")
	assert.Contains(t, out, "Lateral raise set 2  Ramp-up")

	out = mustExec(t, app, "workout", "add-set", "1")
	assert.Contains(t, out, "Lateral raise set 6  Back-off")

	out = mustExec(t, app, "workout", "remove-set", "1", "6")
	assert.Contains(t, out, "Removed Back-off set 6 from Lateral raise.")

	out = mustExec(t, app, "workout", "toggle", "1", "1")
	assert.Contains(t, out, "✔")
	out = mustExec(t, app, "workout", "toggle", "1", "1")
	assert.Contains(t, out, "○")

	_, err := executeCmd(t, app, "workout", "add-set", "1", "--kind", "giant")
	require.Error(t, err)

	_, err = executeCmd(t, app, "workout", "toggle", "1", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set #9 out of range")
}

func TestWorkoutCmd_SetupNote(t *testing.T) {
	app := loggedInApp(t)
	mustExec(t, app, "workout", "start", "day1")

	out := mustExec(t, app, "workout", "note", "2", "seat", "height", "4")
	assert.Contains(t, out, "Setup note for Incline machine press: seat height 4")

	out = mustExec(t, app, "workout", "show")
	assert.Contains(t, out, "setup: seat height 4")

	out = mustExec(t, app, "workout", "note", "2")
	assert.Contains(t, out, "Cleared setup note")
}

func TestWorkoutCmd_DiscardNeedsConfirmation(t *testing.T) {
	app := loggedInApp(t)
	mustExec(t, app, "workout", "start", "day1")

	_, err := executeCmd(t, app, "workout", "discard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	app.IsInteractive = func() bool { return true }
	var asked string
	app.Confirm = func(title string) (bool, error) {
		asked = title
		return false, nil
	}
	out := mustExec(t, app, "workout", "discard")
	assert.Contains(t, out, "Cancelled.")
	assert.Contains(t, asked, "Discard Day 1")
	mustExec(t, app, "workout", "show")

	out = mustExec(t, app, "workout", "discard", "--yes")
	assert.Contains(t, out, "Workout discarded.")
	_, err = executeCmd(t, app, "workout", "show")
	assert.ErrorIs(t, err, errNoDraft)
}

func TestWorkoutCmd_RestNonInteractive(t *testing.T) {
	app := loggedInApp(t)
	mustExec(t, app, "workout", "start", "day1")

	out := mustExec(t, app, "workout", "rest", "2")
	assert.Equal(t, "Rest 3m before the next set of Incline machine press.\n", out)

	out = mustExec(t, app, "workout", "rest", "--seconds", "45")
	assert.Equal(t, "Rest 45s.\n", out)

	out = mustExec(t, app, "workout", "rest")
	assert.Equal(t, "Rest 1m 30s.\n", out)
}

func TestWorkoutCmd_RestRunsTimerProgram(t *testing.T) {
	app := loggedInApp(t)
	app.IsInteractive = func() bool { return true }
	var ran tea.Model
	app.RunProgram = func(m tea.Model) error {
		ran = m
		return nil
	}
	mustExec(t, app, "workout", "start", "day1")
	mustExec(t, app, "workout", "rest", "1")

	m, ok := ran.(restTimerModel)
	require.True(t, ok)
	assert.Equal(t, "Lateral raise", m.label)
	assert.Equal(t, 90*time.Second, m.total)
}

func TestHistoryCmd_Delete(t *testing.T) {
	app := loggedInApp(t)
	mustExec(t, app, "workout", "start", "day1")
	mustExec(t, app, "workout", "log", "1", "2", "12", "12")
	mustExec(t, app, "workout", "finish")

	_, err := executeCmd(t, app, "history", "delete", "2", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	out := mustExec(t, app, "history", "delete", "1", "--yes")
	assert.Contains(t, out, "Deleted Day 1")

	out = mustExec(t, app, "history", "list")
	assert.Contains(t, out, "No completed sessions yet.")
}

func TestWeightCmd(t *testing.T) {
	app := loggedInApp(t)

	out := mustExec(t, app, "weight", "add", "80,4", "--date", "2024-03-01", "--note", "morning")
	assert.Equal(t, "Logged 80.4 on 2024-03-01.\n", out)
	mustExec(t, app, "weight", "add", "79.8")
	mustExec(t, app, "weight", "add", "81", "--date", "2024-02-20")

	out = mustExec(t, app, "weight", "list", "--month", "2024-03")
	assert.Contains(t, out, "MARCH 2024")
	assert.Contains(t, out, "2024-03-15")
	assert.Contains(t, out, "2024-03-01")
	assert.NotContains(t, out, "2024-02-20")

	out = mustExec(t, app, "weight", "list")
	assert.Contains(t, out, "2024-02-20")

	out = mustExec(t, app, "weight", "stats")
	assert.Contains(t, out, "79.8")

	out = mustExec(t, app, "weight", "delete", "2024-02-20")
	assert.Contains(t, out, "Deleted entry on 2024-02-20.")
	out = mustExec(t, app, "weight", "delete", "2024-02-20")
	assert.Contains(t, out, "No entry on 2024-02-20.")

	_, err := executeCmd(t, app, "weight", "add", "heavy")
	require.Error(t, err)
	_, err = executeCmd(t, app, "weight", "add", "0")
	require.Error(t, err)
	_, err = executeCmd(t, app, "weight", "list", "--month", "March")
	require.Error(t, err)
}

func TestSettingsCmd_ToggleAdvanced(t *testing.T) {
	app := loggedInApp(t)

	out := mustExec(t, app, "settings", "advanced")
	assert.Equal(t, "Advanced mode: off\n", out)
	out = mustExec(t, app, "settings", "advanced", "--toggle")
	assert.Equal(t, "Advanced mode: on\n", out)

	mustExec(t, app, "workout", "start", "day1")
	out = mustExec(t, app, "workout", "show")
	assert.Contains(t, out, "RIR")
}

func TestStatusAndCheckCmd(t *testing.T) {
	app := loggedInApp(t)

	out := mustExec(t, app, "status")
	assert.Contains(t, out, "no open workout")
	assert.Contains(t, out, "no completed sessions yet")

	mustExec(t, app, "workout", "start", "day1")
	out = mustExec(t, app, "status")
	assert.Contains(t, out, "in progress")

	out = mustExec(t, app, "check")
	assert.Contains(t, out, "all records readable")
}

func TestUserFlag_SelectsProfile(t *testing.T) {
	app := loggedInApp(t)
	mustExec(t, app, "user", "register", "Bob")

	_, err := executeCmd(t, app, "workout", "show")
	assert.ErrorIs(t, err, errNoDraft)

	mustExec(t, app, "--user", "alice", "workout", "start", "day1")
	out := mustExec(t, app, "--user", "alice", "workout", "show")
	assert.Contains(t, out, "Lateral raise")

	out = mustExec(t, app, "user", "whoami")
	assert.Equal(t, "Bob\n", out)
}

func TestProgramCmd_ImportAndStart(t *testing.T) {
	app := loggedInApp(t)
	path := filepath.Join(t.TempDir(), "programs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
programs:
  - id: legs_a
    name: Legs A
    exercises:
      - id: la_1
        name: Hack squat
        ramp_up_sets: 1
        top_set: true
        back_off_sets: 1
`), 0o644))

	out := mustExec(t, app, "program", "import", path)
	assert.Contains(t, out, "Imported Legs A")

	out = mustExec(t, app, "program", "list")
	assert.Contains(t, out, "Legs A")

	out = mustExec(t, app, "workout", "start", "legs_a")
	assert.Contains(t, out, "1. Hack squat")
}
