package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/liftlog/internal/teatest"
	"github.com/charmbracelet/bubbles/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestDriver(t *testing.T, rest time.Duration) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newRestTimerModel("Bench press", rest), teatest.WithSize(80, 24))
	d.DrainInit()
	return d
}

func restModel(t *testing.T, d *teatest.Driver) restTimerModel {
	t.Helper()
	m, ok := d.Model.(restTimerModel)
	require.True(t, ok)
	return m
}

func tick(t *testing.T, d *teatest.Driver) {
	t.Helper()
	d.Send(timer.TickMsg{ID: restModel(t, d).timer.ID()})
}

func TestRestTimer_CountsDownAndQuits(t *testing.T) {
	d := newRestDriver(t, 3*time.Second)
	assert.Contains(t, d.View(), "Bench press")
	assert.Contains(t, d.View(), "3s")

	tick(t, d)
	tick(t, d)
	m := restModel(t, d)
	assert.Equal(t, time.Second, m.timer.Timeout)
	assert.False(t, m.done)
	assert.False(t, d.Quitting)

	tick(t, d)
	assert.True(t, restModel(t, d).done)
	assert.True(t, d.Quitting)
	assert.Contains(t, d.View(), "Rest over")
}

func TestRestTimer_Elapsed(t *testing.T) {
	d := newRestDriver(t, 4*time.Second)
	assert.InDelta(t, 0.0, restModel(t, d).elapsed(), 1e-9)

	tick(t, d)
	assert.InDelta(t, 0.25, restModel(t, d).elapsed(), 1e-9)
}

func TestRestTimer_PauseStopsCountdown(t *testing.T) {
	d := newRestDriver(t, 3*time.Second)

	d.PressSpace()
	assert.False(t, restModel(t, d).timer.Running())
	assert.Contains(t, d.View(), "paused")

	tick(t, d)
	assert.Equal(t, 3*time.Second, restModel(t, d).timer.Timeout)

	d.PressKey('p')
	assert.True(t, restModel(t, d).timer.Running())
	tick(t, d)
	assert.Equal(t, 2*time.Second, restModel(t, d).timer.Timeout)
}

func TestRestTimer_ExtendAddsThirtySeconds(t *testing.T) {
	d := newRestDriver(t, 10*time.Second)

	d.PressKey('+')
	m := restModel(t, d)
	assert.Equal(t, 40*time.Second, m.timer.Timeout)
	assert.Equal(t, 40*time.Second, m.total)
}

func TestRestTimer_IgnoresOtherTimers(t *testing.T) {
	d := newRestDriver(t, 3*time.Second)
	d.Send(timer.TickMsg{ID: restModel(t, d).timer.ID() + 1000})
	assert.Equal(t, 3*time.Second, restModel(t, d).timer.Timeout)

	d.Send(timer.TimeoutMsg{ID: restModel(t, d).timer.ID() + 1000})
	assert.False(t, d.Quitting)
}

func TestRestTimer_SkipAndQuit(t *testing.T) {
	d := newRestDriver(t, time.Minute)
	d.PressKey('s')
	assert.True(t, d.Quitting)
	assert.True(t, restModel(t, d).skipped)
	assert.Contains(t, d.View(), "Rest skipped.")

	d = newRestDriver(t, time.Minute)
	d.PressEsc()
	assert.True(t, d.Quitting)

	d = newRestDriver(t, time.Minute)
	d.PressCtrlC()
	assert.True(t, d.Quitting)
}
