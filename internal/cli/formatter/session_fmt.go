package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/service"
)

const completionBarWidth = 12

// SessionView controls how much detail FormatSession shows.
type SessionView struct {
	Now      time.Time
	Advanced bool
	// Previous maps template exercise ids to the last logged performance.
	Previous map[string]*service.SetPerformance
}

// FormatSession renders a draft or completed session with numbered
// exercises and sets, the numbers the workout commands accept.
func FormatSession(s *domain.Session, view SessionView) string {
	var b strings.Builder

	total := 0
	for _, ex := range s.Exercises {
		total += len(ex.Sets)
	}
	b.WriteString(Bold(s.TemplateName) + "  " + Dim(HumanDate(s.Date(), view.Now)) + "\n")
	if s.Status == domain.SessionDraft {
		b.WriteString(RenderCompletion(s.LoggedSetCount(), total, completionBarWidth) + "\n")
	}

	for i := range s.Exercises {
		b.WriteString("\n")
		b.WriteString(formatExerciseEntry(i+1, &s.Exercises[i], view))
	}

	title := "Workout"
	if s.Status == domain.SessionCompleted {
		title = "Session"
	}
	return RenderBox(title, b.String())
}

func formatExerciseEntry(n int, ex *domain.ExerciseEntry, view SessionView) string {
	var b strings.Builder

	heading := fmt.Sprintf("%d. %s", n, ex.Name)
	if notes := ex.ContextualNotes; !notes.IsZero() && notes.RestSeconds > 0 {
		heading += Dim("  rest " + FormatRest(notes.RestSeconds))
	}
	b.WriteString(StyleBold.Render(heading) + "\n")

	if ex.HasSetupNote() {
		b.WriteString("   " + StyleYellow.Render("setup: ") + ex.SetupNote + "\n")
	}
	if view.Advanced && !ex.ContextualNotes.IsZero() {
		for _, line := range contextualLines(ex.ContextualNotes) {
			b.WriteString("   " + Dim(line) + "\n")
		}
	}
	if prev := view.Previous[ex.TemplateExerciseID]; prev != nil {
		b.WriteString("   " + Dim(fmt.Sprintf("last: %s x %d (%s)",
			FormatNumber(prev.Weight), prev.Reps, RelativeDateFrom(prev.Date, view.Now))) + "\n")
	}

	headers := []string{"#", "TYPE", "WEIGHT", "REPS"}
	align := []Align{AlignRight, AlignLeft, AlignRight, AlignRight}
	if view.Advanced {
		headers = append(headers, "RIR")
		align = append(align, AlignRight)
	}
	headers = append(headers, "DONE")

	rows := make([][]string, 0, len(ex.Sets))
	for j, set := range ex.Sets {
		row := []string{
			strconv.Itoa(j + 1),
			SetKindBadge(set.Kind),
			FormatWeight(set.Weight),
			FormatCount(set.Reps),
		}
		if view.Advanced {
			row = append(row, FormatCount(set.EffortReserve))
		}
		row = append(row, CompletedMark(set.IsCompleted))
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		b.WriteString("   " + Dim("no sets") + "\n")
		return b.String()
	}
	for _, line := range strings.Split(strings.TrimRight(RenderTableAligned(headers, rows, align), "\n"), "\n") {
		b.WriteString("   " + line + "\n")
	}
	return b.String()
}

func contextualLines(n *domain.ContextualNotes) []string {
	var lines []string
	if n.Rationale != "" {
		lines = append(lines, "why: "+n.Rationale)
	}
	if n.SetScheme != "" {
		lines = append(lines, "scheme: "+n.SetScheme)
	}
	if n.Cue != "" {
		lines = append(lines, "cue: "+n.Cue)
	}
	if n.Tempo != "" {
		lines = append(lines, "tempo: "+n.Tempo)
	}
	return lines
}

// FormatHistory renders completed sessions, newest first, numbered for
// `history show N`.
func FormatHistory(sessions []*domain.Session, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No completed sessions yet.") + "\n"
	}
	headers := []string{"#", "DATE", "PROGRAM", "EXERCISES", "SETS", "ID"}
	rows := make([][]string, 0, len(sessions))
	for i, s := range sessions {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			HumanDate(s.Date(), now),
			Bold(s.TemplateName),
			strconv.Itoa(len(s.Exercises)),
			strconv.Itoa(s.LoggedSetCount()),
			TruncID(s.ID),
		})
	}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignRight}
	return RenderBox("History", RenderTableAligned(headers, rows, align))
}

// FormatExerciseHistory renders the recent appearances of one exercise.
func FormatExerciseHistory(name string, appearances []service.ExerciseAppearance, now time.Time) string {
	if len(appearances) == 0 {
		return Dim(fmt.Sprintf("No logged sessions for %s.", name)) + "\n"
	}
	var b strings.Builder
	for i, a := range appearances {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Bold(HumanDate(a.Date, now)) + "  " + Dim(a.TemplateName) + "\n")
		if a.SetupNote != "" {
			b.WriteString("  " + StyleYellow.Render("setup: ") + a.SetupNote + "\n")
		}
		for _, set := range a.Sets {
			b.WriteString(fmt.Sprintf("  %s  %s x %s\n",
				SetKindBadge(set.Kind), FormatWeight(set.Weight), FormatCount(set.Reps)))
		}
	}
	return RenderBox(name, b.String())
}
