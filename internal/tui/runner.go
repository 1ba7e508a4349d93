// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/att-innovate/zeppelin/internal/interpreter"
	batchprogress "github.com/att-innovate/zeppelin/internal/progress"
)

// Reporter implements the interpreter's progress.Reporter and forwards
// events into the running tea program.
type Reporter struct {
	program *tea.Program
	closed  bool
	mutex   sync.RWMutex
}

var _ batchprogress.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter bound to the given program.
func NewReporter(program *tea.Program) *Reporter {
	return &Reporter{program: program}
}

// Report implements progress.Reporter.
func (r *Reporter) Report(event batchprogress.Event) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if r.closed || r.program == nil {
		return
	}

	r.program.Send(EventMsg{Event: event})
}

// Close implements progress.Reporter.
func (r *Reporter) Close() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.closed = true
}

// ExecuteFunc runs a batch and reports events through the given reporter.
type ExecuteFunc func(ctx context.Context, reporter batchprogress.Reporter) (*interpreter.Result, error)

// Run displays the progress TUI while fn executes the batch. It returns
// fn's result once the batch has finished and the user has dismissed the
// display.
func Run(ctx context.Context, fn ExecuteFunc) (*interpreter.Result, error) {
	model := NewModel()
	program := tea.NewProgram(model)
	reporter := NewReporter(program)

	type outcome struct {
		res *interpreter.Result
		err error
	}

	resultCh := make(chan outcome, 1)

	go func() {
		res, err := fn(ctx, reporter)
		program.Send(BatchCompletedMsg{Result: res})
		resultCh <- outcome{res: res, err: err}
	}()

	if _, err := program.Run(); err != nil {
		reporter.Close()
		out := <-resultCh

		if out.err != nil {
			return out.res, out.err
		}

		return out.res, err
	}

	reporter.Close()
	out := <-resultCh

	return out.res, out.err
}
