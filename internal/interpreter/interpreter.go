// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package interpreter adapts line-oriented notebook paragraphs to the
// Alluxio shell. It splits a text block into commands, runs them in order
// against an external command runner, captures the combined output and
// reports progress and completion candidates.
//
// The interpreter holds no storage logic. Command failures are encoded in
// the Result's outcome tag, never returned as Go errors; Execute returns
// an error only for host-level misuse such as executing before Open.
package interpreter

import (
	"context"
	"errors"
	"sync"

	"github.com/att-innovate/zeppelin/internal/alluxio"
	"github.com/att-innovate/zeppelin/internal/completion"
	"github.com/att-innovate/zeppelin/internal/ctxlog"
	"github.com/att-innovate/zeppelin/internal/progress"
	"github.com/att-innovate/zeppelin/internal/properties"
	"github.com/hashicorp/go-multierror"
)

var (
	// ErrNotOpen is returned when Execute is called before Open.
	ErrNotOpen = errors.New("interpreter is not open")
	// ErrAlreadyOpen is returned when Open is called twice.
	ErrAlreadyOpen = errors.New("interpreter is already open")
)

// RunnerFactory constructs the external command runner during Open.
// Tests inject stubbed runners through it.
type RunnerFactory func(ctx context.Context, props *properties.Properties) (alluxio.Runner, error)

// Interpreter is the command batch runner.
//
// The notebook host guarantees at most one batch execution in flight per
// instance; the mutex makes a violated guarantee degrade to serialization
// instead of corrupted state. Progress is readable from other goroutines
// while a batch runs.
type Interpreter struct {
	props      *properties.Properties
	newRunner  RunnerFactory
	reporter   progress.Reporter
	completer  *completion.Completer
	tracker    progress.Tracker
	runner     alluxio.Runner
	helpText   string
	mu         sync.Mutex
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithRunnerFactory replaces the default Alluxio CLI runner constructor.
func WithRunnerFactory(f RunnerFactory) Option {
	return func(i *Interpreter) {
		i.newRunner = f
	}
}

// WithReporter sets the progress event reporter.
func WithReporter(r progress.Reporter) Option {
	return func(i *Interpreter) {
		i.reporter = r
	}
}

// WithKeywords replaces the completion keyword set.
func WithKeywords(keywords ...string) Option {
	return func(i *Interpreter) {
		i.completer = completion.New(keywords...)
	}
}

// New creates an Interpreter bound to the given properties. Open must be
// called before the first Execute.
func New(props *properties.Properties, opts ...Option) *Interpreter {
	if props == nil {
		props = properties.Default()
	}

	i := &Interpreter{
		props: props,
		newRunner: func(ctx context.Context, props *properties.Properties) (alluxio.Runner, error) {
			return alluxio.NewShell(ctx, props)
		},
		reporter:  progress.NewNullReporter(),
		completer: completion.New(),
		helpText:  helpPlaceholder,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Open constructs the external command runner bound to the configured
// master host and port, then initializes the cached help text. Help-text
// failure is non-fatal: the placeholder is served until it succeeds.
func (i *Interpreter) Open(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.runner != nil {
		return ErrAlreadyOpen
	}

	ctxlog.Info(ctx, "opening interpreter",
		"masterHostname", i.props.MasterHostname,
		"masterPort", i.props.MasterPort,
	)

	runner, err := i.newRunner(ctx, i.props)
	if err != nil {
		return err
	}

	i.runner = runner
	i.initHelpText(ctx)

	return nil
}

// Close releases the external command runner and the progress reporter.
// Release failures are logged, never propagated: closing must not fail the
// caller.
func (i *Interpreter) Close(ctx context.Context) {
	i.mu.Lock()
	defer i.mu.Unlock()

	ctxlog.Info(ctx, "closing interpreter")

	var errs *multierror.Error

	if i.runner != nil {
		if err := i.runner.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}

		i.runner = nil
	}

	i.reporter.Close()

	if err := errs.ErrorOrNil(); err != nil {
		ctxlog.Error(ctx, "cannot close connection", "error", err)
	}
}

// Cancel is a no-op: the external runner offers no mid-command
// cancellation hook, so an in-flight batch cannot be interrupted.
func (i *Interpreter) Cancel(ctx context.Context) {
	ctxlog.Debug(ctx, "cancel requested, not supported")
}

// Progress returns the truncated completion percentage of the current or
// most recent batch, 0 when no batch has run.
func (i *Interpreter) Progress() int {
	return i.tracker.Percent()
}

// ProgressSnapshot returns the completed and total command counts of the
// current or most recent batch.
func (i *Interpreter) ProgressSnapshot() (completed, total int) {
	return i.tracker.Snapshot()
}

// Complete returns keyword candidates for the partial token at the cursor.
// Pure query, safe at any time.
func (i *Interpreter) Complete(buffer string, cursor int) []completion.Candidate {
	return i.completer.Complete(buffer, cursor)
}
