package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/app"
	"github.com/alexanderramin/liftlog/internal/service"
)

// FormatStatus renders the dashboard for the active user.
func FormatStatus(resp *app.StatusResponse, now time.Time) string {
	var b strings.Builder

	b.WriteString(Bold(resp.User))
	if resp.AdvancedMode {
		b.WriteString("  " + StylePurple.Render("advanced"))
	}
	b.WriteString("\n\n")

	b.WriteString(Header("Workout") + "\n")
	if d := resp.Draft; d != nil {
		fmt.Fprintf(&b, "  %s  %s\n", StyleGreen.Render("● in progress"), Bold(d.TemplateName))
		fmt.Fprintf(&b, "  %s  %s\n", Dim("started"), RelativeDateFrom(d.StartedAt, now))
		fmt.Fprintf(&b, "  %s\n", RenderCompletion(d.LoggedSets, d.TotalSets, completionBarWidth))
	} else {
		b.WriteString("  " + Dim("no open workout") + "\n")
	}

	if last := resp.LastSession; last != nil {
		fmt.Fprintf(&b, "  %s  %s, %s (%d sets)\n",
			Dim("last"), last.TemplateName, HumanDate(last.Date, now), last.LoggedSets)
		fmt.Fprintf(&b, "  %s  %d\n", Dim("total"), resp.SessionCount)
	}

	b.WriteString("\n" + Header("Body weight") + "\n")
	if resp.Weight.Count > 0 {
		fmt.Fprintf(&b, "  %s  %s  %s %s\n",
			Dim("current"), Bold(FormatNumber(resp.Weight.Current)),
			Dim("7-day"), FormatSigned(round1(resp.Weight.Diff7d)))
	} else {
		b.WriteString("  " + Dim("none logged") + "\n")
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render("  NOTE: "+w) + "\n")
		}
	}
	return RenderBox("Status", b.String())
}

// FormatIntegrity renders the record counts of a check.
func FormatIntegrity(r *service.IntegrityReport) string {
	draft := Dim("none")
	if r.HasDraft {
		draft = StyleGreen.Render("open")
	}
	rows := [][]string{
		{"Sessions", fmt.Sprint(r.Sessions)},
		{"Logged sets", fmt.Sprint(r.LoggedSets)},
		{"Draft", draft},
		{"Custom programs", fmt.Sprint(r.CustomPrograms)},
		{"Custom exercises", fmt.Sprint(r.CustomExercises)},
		{"Weight entries", fmt.Sprint(r.WeightEntries)},
	}
	body := RenderTableAligned([]string{"RECORD", "COUNT"}, rows, []Align{AlignLeft, AlignRight})
	return RenderBox("Check: "+r.User, body+"\n"+StyleGreen.Render("✔ all records readable")+"\n")
}
