package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pushDay = `
defaults:
  back_off_sets: 2
  rest_seconds: 90
programs:
  - id: custom_push
    name: Push
    defaults:
      ramp_up_sets: 1
    exercises:
      - id: p1
        library: chest_1
        name: Bench press
        top_set: true
        reps: "5-8"
        effort: 1
        notes:
          cue: Feet planted.
          rest_seconds: 180
      - id: p2
        name: Cable fly
        ramp_up_sets: 0
        back_off_sets: 3
        effort: 9
`

func TestExecute_AppliesDefaults(t *testing.T) {
	file, err := ParseFile([]byte(pushDay))
	require.NoError(t, err)

	programs, err := Execute(file)
	require.NoError(t, err)
	require.Len(t, programs, 1)

	p := programs[0]
	assert.Equal(t, "custom_push", p.ID)
	require.Len(t, p.Exercises, 2)

	bench := p.Exercises[0]
	assert.Equal(t, "chest_1", bench.LibraryID)
	assert.Equal(t, 1, bench.DefaultRampUpSetCount, "program defaults win over file defaults")
	assert.True(t, bench.HasTopSet)
	assert.Equal(t, 2, bench.DefaultBackOffSetCount)
	assert.Equal(t, "5-8", bench.TargetRepRange)
	require.NotNil(t, bench.ContextualNotes)
	assert.Equal(t, 180, bench.ContextualNotes.RestSeconds)
	assert.Equal(t, "Feet planted.", bench.ContextualNotes.Cue)

	fly := p.Exercises[1]
	assert.Equal(t, 0, fly.DefaultRampUpSetCount)
	assert.False(t, fly.HasTopSet)
	assert.Equal(t, 3, fly.DefaultBackOffSetCount)
	assert.Equal(t, domain.MaxEffortReserve, fly.TargetEffort, "effort is clamped")
	require.NotNil(t, fly.ContextualNotes, "rest falls back to the file default")
	assert.Equal(t, 90, fly.ContextualNotes.RestSeconds)
}

func TestExecute_RejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"no programs":    "programs: []",
		"no exercises":   "programs:\n  - {id: a, name: A, exercises: []}",
		"missing name":   "programs:\n  - {id: a, exercises: [{id: x, name: X}]}",
		"negative count": "programs:\n  - {id: a, name: A, exercises: [{id: x, name: X, back_off_sets: -1}]}",
		"duplicate exercise": `programs:
  - id: a
    name: A
    exercises: [{id: x, name: X}, {id: x, name: Y}]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			file, err := ParseFile([]byte(doc))
			require.NoError(t, err)
			_, err = Execute(file)
			assert.ErrorIs(t, err, domain.ErrInvalidTemplate)
		})
	}
}

func TestParseFile_RejectsUnknownFields(t *testing.T) {
	_, err := ParseFile([]byte("programs:\n  - {id: a, name: A, sets: 3, exercises: [{id: x, name: X}]}"))
	assert.Error(t, err)

	_, err = ParseFile([]byte(""))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "push.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pushDay), 0o644))

	file, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, file.Programs, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLibrary(t *testing.T) {
	lib, err := ParseLibrary([]byte(`
groups:
  - muscle: Chest
    exercises:
      - {id: chest_1, name: Bench}
  - muscle: Back
    exercises:
      - {id: back_1, name: Pull-up}
`))
	require.NoError(t, err)

	exercises, err := Library(lib)
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "Back", exercises[1].MuscleGroup)

	lib.Groups[1].Exercises[0].ID = "chest_1"
	_, err = Library(lib)
	assert.Error(t, err)
}
