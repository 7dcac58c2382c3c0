package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/liftlog/internal/domain"
)

// FormatProgramList renders built-in and custom programs in one table.
func FormatProgramList(programs []domain.ProgramTemplate) string {
	headers := []string{"ID", "NAME", "EXERCISES", "SOURCE"}
	rows := make([][]string, 0, len(programs))
	for _, p := range programs {
		source := Dim("built-in")
		if p.IsCustom {
			source = StylePurple.Render("custom")
		}
		rows = append(rows, []string{
			p.ID,
			Bold(p.Name),
			strconv.Itoa(len(p.Exercises)),
			source,
		})
	}
	return RenderBox("Programs", RenderTable(headers, rows))
}

// FormatProgram renders one program's exercise prescriptions.
func FormatProgram(p *domain.ProgramTemplate) string {
	var b strings.Builder
	b.WriteString(Bold(p.Name) + "  " + Dim(p.ID) + "\n\n")

	headers := []string{"#", "EXERCISE", "SETS", "REPS", "RIR", "REST"}
	rows := make([][]string, 0, len(p.Exercises))
	for i, ex := range p.Exercises {
		rest := 0
		if ex.ContextualNotes != nil {
			rest = ex.ContextualNotes.RestSeconds
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			ex.Name,
			setScheme(ex),
			CoalescePlaceholder(ex.TargetRepRange),
			strconv.Itoa(ex.TargetEffort),
			FormatRest(rest),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return RenderBox("Program", b.String())
}

// setScheme summarizes the default set layout, e.g. "2R + T + 3B".
func setScheme(ex domain.ExerciseTemplate) string {
	var parts []string
	if ex.DefaultRampUpSetCount > 0 {
		parts = append(parts, StyleBlue.Render(fmt.Sprintf("%dR", ex.DefaultRampUpSetCount)))
	}
	if ex.HasTopSet {
		parts = append(parts, StyleHeader.Render("T"))
	}
	if ex.DefaultBackOffSetCount > 0 {
		parts = append(parts, StylePurple.Render(fmt.Sprintf("%dB", ex.DefaultBackOffSetCount)))
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, " + ")
}

// FormatLibrary renders exercises grouped by muscle, in the given group order.
func FormatLibrary(order []string, groups map[string][]domain.LibraryExercise) string {
	var b strings.Builder
	for i, muscle := range order {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(muscle) + "\n")
		for _, ex := range groups[muscle] {
			line := fmt.Sprintf("  %-12s %s", ex.ID, ex.Name)
			if ex.IsCustom {
				line += " " + StylePurple.Render("(custom)")
			}
			b.WriteString(line + "\n")
		}
	}
	return RenderBox("Exercises", b.String())
}

func CoalescePlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return Placeholder
	}
	return s
}
