// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/att-innovate/zeppelin/internal/interpreter"
	batchprogress "github.com/att-innovate/zeppelin/internal/progress"
)

const defaultWidth = 60

// EventMsg wraps an interpreter progress event for the tea framework.
type EventMsg struct {
	Event batchprogress.Event
}

// BatchCompletedMsg carries the final result into the display.
type BatchCompletedMsg struct {
	Result *interpreter.Result
}

// Init implements bubbletea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements bubbletea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "enter":
			if m.completed {
				m.quitting = true
				return m, tea.Quit
			}
		}

		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 4
		if m.bar.Width > defaultWidth {
			m.bar.Width = defaultWidth
		}

		return m, nil

	case EventMsg:
		m.applyEvent(msg.Event)
		return m, nil

	case BatchCompletedMsg:
		m.completed = true
		m.result = msg.Result

		return m, nil

	case tea.QuitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements bubbletea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var view strings.Builder

	view.WriteString(m.styles.Title.Render("Alluxio command batch"))
	view.WriteString("\n")

	for _, row := range m.rows {
		switch row.status {
		case StatusRunning:
			view.WriteString(m.styles.Running.Render(fmt.Sprintf("  ⚡ %s", row.text)))
		case StatusSuccess:
			view.WriteString(m.styles.Success.Render(fmt.Sprintf("  ✓ %s", row.text)))
		case StatusFailed:
			view.WriteString(m.styles.Failed.Render(fmt.Sprintf("  ✗ %s (exit %d)", row.text, row.exitCode)))
		}

		view.WriteString("\n")

		if row.status == StatusFailed && row.lastLine != "" {
			view.WriteString(m.styles.Help.Render(fmt.Sprintf("      %s", row.lastLine)))
			view.WriteString("\n")
		}
	}

	view.WriteString("\n")
	view.WriteString(m.bar.ViewAs(float64(m.percent) / 100.0))
	view.WriteString("\n")

	if m.completed {
		if m.result != nil && m.result.Failed() {
			view.WriteString(m.styles.Failed.Render("Batch stopped on first failure"))
		} else {
			view.WriteString(m.styles.Success.Render("Batch completed successfully"))
		}

		view.WriteString("\n")
		view.WriteString(m.styles.Help.Render("press 'q' to quit"))
	}

	view.WriteString("\n")

	return view.String()
}
