// Package tui provides the Bubble Tea integration for Find The Mouse.
// It renders the board, maps keys and mouse clicks to game input and
// delivers the delayed deal back into the update loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DealMsg is sent when a scheduled deal is due.
type DealMsg struct {
	ID uint64
}

// teaScheduler implements game.Scheduler on top of tea.Tick so scheduled
// calls run inside Update, never on a timer goroutine.
type teaScheduler struct {
	next   uint64
	fns    map[uint64]func()
	queued []tea.Cmd
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{fns: make(map[uint64]func())}
}

// Schedule queues a tick command; it is handed to Bubble Tea by drain.
func (s *teaScheduler) Schedule(d time.Duration, fn func()) func() {
	s.next++
	id := s.next
	s.fns[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return DealMsg{ID: id}
	}))
	return func() { delete(s.fns, id) }
}

// drain returns the commands queued since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// fire runs the call for id unless it was cancelled or already ran.
func (s *teaScheduler) fire(id uint64) {
	fn, ok := s.fns[id]
	if !ok {
		return
	}
	delete(s.fns, id)
	fn()
}

// pending returns the number of calls still waiting.
func (s *teaScheduler) pending() int {
	return len(s.fns)
}
