// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package tui renders live batch progress while commands run against the
// storage shell. Rows appear as the interpreter reports command starts; a
// progress bar tracks the batch completion percentage.
package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/att-innovate/zeppelin/internal/interpreter"
	batchprogress "github.com/att-innovate/zeppelin/internal/progress"
)

// CommandStatus is the display state of one command row.
type CommandStatus int

const (
	// StatusRunning means the command is currently executing.
	StatusRunning CommandStatus = iota
	// StatusSuccess means the command completed with status 0.
	StatusSuccess
	// StatusFailed means the command returned a non-zero status.
	StatusFailed
)

// String returns a string representation of the command status.
func (s CommandStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// commandRow is one command's display state.
type commandRow struct {
	index    int
	text     string
	status   CommandStatus
	exitCode int
	lastLine string
}

// Styles contains the styling for the display.
type Styles struct {
	Title   lipgloss.Style
	Running lipgloss.Style
	Success lipgloss.Style
	Failed  lipgloss.Style
	Help    lipgloss.Style
}

// NewStyles creates the default styling.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1),
		Running: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Failed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1),
	}
}

// Model is the bubbletea model for batch progress.
type Model struct {
	rows      []commandRow
	bar       progress.Model
	percent   int
	width     int
	completed bool
	quitting  bool
	result    *interpreter.Result
	styles    *Styles
}

// NewModel creates a new progress display model.
func NewModel() *Model {
	return &Model{
		bar:    progress.New(progress.WithDefaultGradient()),
		styles: NewStyles(),
	}
}

// Result returns the final batch result once execution has completed.
func (m *Model) Result() *interpreter.Result {
	return m.result
}

// applyEvent folds one interpreter progress event into the display state.
func (m *Model) applyEvent(event batchprogress.Event) {
	switch event.Type {
	case batchprogress.EventBatchStarted:
		m.rows = m.rows[:0]
		m.percent = 0

	case batchprogress.EventCommandStarted:
		m.rows = append(m.rows, commandRow{
			index:  event.Index,
			text:   event.Command,
			status: StatusRunning,
		})
		m.percent = event.Percent

	case batchprogress.EventCommandCompleted:
		m.setRowStatus(event.Index, StatusSuccess, 0, event.LastLine)
		m.percent = event.Percent

	case batchprogress.EventCommandFailed:
		m.setRowStatus(event.Index, StatusFailed, event.ExitCode, event.LastLine)
		m.percent = event.Percent

	case batchprogress.EventBatchCompleted:
		m.percent = event.Percent
	}
}

func (m *Model) setRowStatus(index int, status CommandStatus, exitCode int, lastLine string) {
	for i := range m.rows {
		if m.rows[i].index == index {
			m.rows[i].status = status
			m.rows[i].exitCode = exitCode
			m.rows[i].lastLine = lastLine

			return
		}
	}
}
