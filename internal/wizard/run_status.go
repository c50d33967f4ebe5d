// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

package wizard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// NicheState is the lifecycle state of one niche shown on the status
// screen.
type NicheState string

const (
	StatePending NicheState = "pending"
	StateRunning NicheState = "running"
	StateOK      NicheState = "ok"
	StateFailed  NicheState = "failed"
)

// nicheRow is one line of the status screen.
type nicheRow struct {
	name  string
	state NicheState
	err   error
}

// NicheStartedMsg reports that a niche began running.
type NicheStartedMsg struct{ Name string }

// NicheFinishedMsg reports that a niche finished, successfully or not.
type NicheFinishedMsg struct {
	Name string
	Err  error
}

// runDoneMsg signals that every niche has finished. The screen then shows a
// done hint; the program keeps running until the user quits.
type runDoneMsg struct{}

// RunStatusModel is the bubbletea model driving `cargocult wizard`'s live
// run screen: one row per niche, updated as NicheStartedMsg/
// NicheFinishedMsg arrive from the orchestrator.
type RunStatusModel struct {
	rows   []nicheRow
	index  map[string]int
	done   bool
	cursor int
}

// NewRunStatusModel creates a status screen with one pending row per
// niche name, in the given order.
func NewRunStatusModel(names []string) RunStatusModel {
	rows := make([]nicheRow, len(names))
	index := make(map[string]int, len(names))
	for i, name := range names {
		rows[i] = nicheRow{name: name, state: StatePending}
		index[name] = i
	}
	return RunStatusModel{rows: rows, index: index}
}

// Init implements tea.Model.
func (m RunStatusModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m RunStatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		}

	case NicheStartedMsg:
		if i, ok := m.index[msg.Name]; ok {
			m.rows[i].state = StateRunning
		}

	case NicheFinishedMsg:
		if i, ok := m.index[msg.Name]; ok {
			if msg.Err != nil {
				m.rows[i].state = StateFailed
				m.rows[i].err = msg.Err
			} else {
				m.rows[i].state = StateOK
			}
		}

	case runDoneMsg:
		m.done = true
	}

	return m, nil
}

// View implements tea.Model.
func (m RunStatusModel) View() string {
	var b strings.Builder

	ok, failed := 0, 0
	for _, r := range m.rows {
		switch r.state {
		case StateOK:
			ok++
		case StateFailed:
			failed++
		}
	}

	title := fmt.Sprintf(" cargocult wizard --run (%d/%d done, %d failed) ", ok+failed, len(m.rows), failed)
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n\n")

	for i, r := range m.rows {
		line := fmt.Sprintf("  %-4s %-24s %s", icon(r.state), r.name, detail(r))
		if i == m.cursor {
			line = CursorStyle.Render(line)
		} else if r.state == StateFailed {
			line = FailStyle.Render(line)
		} else if r.state == StateOK {
			line = OKStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(DimStyle.Render("  done — press q to exit"))
	} else {
		b.WriteString(DimStyle.Render("  ↑↓/j/k: navigate  q: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func icon(s NicheState) string {
	switch s {
	case StatePending:
		return "·"
	case StateRunning:
		return "…"
	case StateOK:
		return IconSuccess
	case StateFailed:
		return "✗"
	default:
		return "?"
	}
}

func detail(r nicheRow) string {
	if r.state == StateFailed && r.err != nil {
		return r.err.Error()
	}
	return ""
}

// RunFunc runs one niche to completion; it is the same shape as
// internal/cargo/scheduler.RunFunc so a niche.Driver.Drive closure can be
// passed directly.
type RunFunc func(ctx context.Context, name string) error

// RunWithStatus drives names sequentially, each via runOne,
// rendering a live bubbletea status screen, and returns the first error
// encountered (if any), continuing past failed niches the way the
// orchestrator's scheduler does.
func RunWithStatus(ctx context.Context, names []string, runOne RunFunc) error {
	model := NewRunStatusModel(names)
	program := tea.NewProgram(model)

	resultCh := make(chan error, 1)
	go func() {
		var firstErr error
		for _, name := range names {
			program.Send(NicheStartedMsg{Name: name})
			err := runOne(ctx, name)
			program.Send(NicheFinishedMsg{Name: name, Err: err})
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
		program.Send(runDoneMsg{})
		resultCh <- firstErr
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("wizard: status screen: %w", err)
	}

	return <-resultCh
}
