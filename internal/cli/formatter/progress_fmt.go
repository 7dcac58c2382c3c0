package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/service"
)

// FormatProgress renders the per-session trend of one exercise, oldest first.
func FormatProgress(name string, report service.ProgressReport, now time.Time) string {
	if len(report.Points) == 0 {
		return Dim(fmt.Sprintf("No logged sets for %s.", name)) + "\n"
	}

	var b strings.Builder
	headers := []string{"DATE", "SET", "WEIGHT", "REPS", "E1RM"}
	rows := make([][]string, 0, len(report.Points))
	for _, p := range report.Points {
		rows = append(rows, []string{
			HumanDate(p.Date, now),
			SetKindBadge(p.Kind),
			FormatNumber(p.Weight),
			strconv.Itoa(p.Reps),
			FormatNumber(round1(p.E1RM)),
		})
	}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight}
	b.WriteString(RenderTableAligned(headers, rows, align))

	if report.HasComparison {
		c := report.Comparison
		fmt.Fprintf(&b, "\n%s  weight %s  reps %s  e1RM %s\n",
			Dim("vs previous"),
			FormatSigned(c.WeightDiff),
			FormatSigned(float64(c.RepsDiff)),
			FormatSigned(round1(c.E1RMDiff)))
	}
	if best, ok := report.Best(); ok {
		fmt.Fprintf(&b, "%s  %s x %d (%s)\n",
			Dim("best       "), Bold(FormatNumber(best.Weight)), best.Reps, HumanDate(best.Date, now))
	}
	if report.Plateau {
		b.WriteString("\n" + StyleYellow.Render("Plateau: estimated max flat over the last 3 sessions.") + "\n")
	}
	return RenderBox(name, b.String())
}

// FormatTracked lists exercises that have logged history.
func FormatTracked(tracked []service.TrackedExercise, now time.Time) string {
	if len(tracked) == 0 {
		return Dim("No logged exercises yet.") + "\n"
	}
	headers := []string{"ID", "EXERCISE", "SESSIONS", "LAST"}
	rows := make([][]string, 0, len(tracked))
	for _, t := range tracked {
		rows = append(rows, []string{
			Dim(t.ID),
			Bold(t.Name),
			strconv.Itoa(t.Sessions),
			RelativeDateFrom(t.LastDate, now),
		})
	}
	return RenderBox("Progress", RenderTableAligned(headers, rows, []Align{AlignLeft, AlignLeft, AlignRight}))
}
