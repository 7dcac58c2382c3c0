package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	restExtendStep = 30 * time.Second
	restBarWidth   = 32
)

type restKeyMap struct {
	Pause  key.Binding
	Extend key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

func (k restKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Extend, k.Skip, k.Quit}
}

func (k restKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultRestKeys() restKeyMap {
	return restKeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Extend: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add 30s"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s", "enter"),
			key.WithHelp("s", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// restTimerModel counts down the rest between two sets.
type restTimerModel struct {
	label   string
	total   time.Duration
	timer   timer.Model
	bar     progress.Model
	help    help.Model
	keys    restKeyMap
	done    bool
	skipped bool
}

func newRestTimerModel(label string, rest time.Duration) restTimerModel {
	return restTimerModel{
		label: label,
		total: rest,
		timer: timer.NewWithInterval(rest, time.Second),
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(restBarWidth)),
		help:  help.New(),
		keys:  defaultRestKeys(),
	}
}

func (m restTimerModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m restTimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd

	case timer.TimeoutMsg:
		if msg.ID != m.timer.ID() {
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Skip):
			m.skipped = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			return m, m.timer.Toggle()
		case key.Matches(msg, m.keys.Extend):
			m.timer.Timeout += restExtendStep
			m.total += restExtendStep
			return m, nil
		}
	}
	return m, nil
}

// elapsed is the share of the rest already spent, in [0,1].
func (m restTimerModel) elapsed() float64 {
	if m.total <= 0 {
		return 1
	}
	left := m.timer.Timeout
	if left < 0 {
		left = 0
	}
	return 1 - float64(left)/float64(m.total)
}

func (m restTimerModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Rest") + "  " + m.label + "\n\n")

	switch {
	case m.done:
		b.WriteString(formatter.StyleGreen.Render("Rest over. Next set!") + "\n")
		return b.String()
	case m.skipped:
		b.WriteString(formatter.Dim("Rest skipped.") + "\n")
		return b.String()
	}

	status := m.timer.View()
	if !m.timer.Running() {
		status += formatter.StyleYellow.Render("  paused")
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n\n", m.bar.ViewAs(m.elapsed()), status))
	b.WriteString("  " + m.help.View(m.keys) + "\n")
	return b.String()
}
