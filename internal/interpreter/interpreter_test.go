// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package interpreter

import (
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/att-innovate/zeppelin/internal/alluxio"
	"github.com/att-innovate/zeppelin/internal/progress"
	"github.com/att-innovate/zeppelin/internal/properties"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner scripts exit codes and output per argv.
type stubRunner struct {
	exitCodes  map[string]int
	output     map[string]string
	calls      [][]string
	closeErr   error
	closed     bool
	lastWriter io.Writer
}

var _ alluxio.Runner = (*stubRunner)(nil)

func (s *stubRunner) Run(_ context.Context, argv []string, w io.Writer) int {
	s.calls = append(s.calls, slices.Clone(argv))
	s.lastWriter = w

	key := strings.Join(argv, " ")
	if out, ok := s.output[key]; ok {
		io.WriteString(w, out) //nolint:errcheck
	}

	return s.exitCodes[key]
}

func (s *stubRunner) Close() error {
	s.closed = true
	return s.closeErr
}

// commandCalls returns the stub's calls without the "help" probe issued
// during Open.
func (s *stubRunner) commandCalls() [][]string {
	calls := make([][]string, 0, len(s.calls))

	for _, c := range s.calls {
		if len(c) == 1 && c[0] == "help" {
			continue
		}

		calls = append(calls, c)
	}

	return calls
}

func openInterpreter(t *testing.T, stub *stubRunner, opts ...Option) *Interpreter {
	t.Helper()

	opts = append(opts, WithRunnerFactory(
		func(context.Context, *properties.Properties) (alluxio.Runner, error) {
			return stub, nil
		},
	))

	interp := New(properties.Default(), opts...)
	require.NoError(t, interp.Open(context.Background()))

	return interp
}

func TestExecuteEmptyInput(t *testing.T) {
	stub := &stubRunner{}
	interp := openInterpreter(t, stub)

	for _, text := range []string{"", "\n\n\n", "   \n\t\n  "} {
		res, err := interp.Execute(context.Background(), text)
		require.NoError(t, err)

		assert.Equal(t, CodeSuccess, res.Code)
		assert.Empty(t, res.Output)
		assert.Equal(t, -1, res.FailedIndex)
		assert.Equal(t, 0, interp.Progress())
		assert.Empty(t, stub.commandCalls())
	}
}

func TestExecuteAllSucceed(t *testing.T) {
	stub := &stubRunner{
		output: map[string]string{
			"ls /":    "file1\nfile2\n",
			"ls /tmp": "scratch\n",
		},
	}
	interp := openInterpreter(t, stub)

	res, err := interp.Execute(context.Background(), "ls /\n\nls /tmp\n")
	require.NoError(t, err)

	assert.Equal(t, CodeSuccess, res.Code)
	assert.Equal(t, 100, interp.Progress())
	assert.Equal(t, [][]string{{"ls", "/"}, {"ls", "/tmp"}}, stub.commandCalls())

	// Each successful command is followed by a separating blank line.
	assert.Equal(t, "file1\nfile2\n\nscratch\n\n", res.Output)
}

func TestExecuteShortCircuitsOnFailure(t *testing.T) {
	stub := &stubRunner{
		exitCodes: map[string]int{"bogus-cmd": 255},
		output: map[string]string{
			"ls /":      "file1\n",
			"bogus-cmd": "bogus-cmd is an unknown command.\n",
		},
	}
	interp := openInterpreter(t, stub)

	res, err := interp.Execute(context.Background(), "ls /\nbogus-cmd\nls /tmp")
	require.NoError(t, err)

	assert.Equal(t, CodeError, res.Code)
	assert.True(t, res.Failed())
	assert.Equal(t, 1, res.FailedIndex)
	assert.Equal(t, "bogus-cmd", res.FailedCommand)
	assert.Equal(t, 255, res.ExitStatus)

	// The failing command's partial output is included; ls /tmp never ran.
	assert.Equal(t, "file1\n\nbogus-cmd is an unknown command.\n", res.Output)
	assert.Equal(t, [][]string{{"ls", "/"}, {"bogus-cmd"}}, stub.commandCalls())

	completed, total := interp.ProgressSnapshot()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 3, total)
	assert.Equal(t, 33, interp.Progress())
}

func TestExecuteCaptureIsScopedToTheBatch(t *testing.T) {
	stub := &stubRunner{output: map[string]string{"ls /": "file1\n"}}
	interp := openInterpreter(t, stub)

	res, err := interp.Execute(context.Background(), "ls /")
	require.NoError(t, err)
	require.Equal(t, "file1\n\n", res.Output)

	// A write through the sink the runner saw during the batch must not
	// alter the produced Result.
	io.WriteString(stub.lastWriter, "late write\n") //nolint:errcheck
	assert.Equal(t, "file1\n\n", res.Output)
}

func TestExecuteHelpServedFromCache(t *testing.T) {
	stub := &stubRunner{
		output: map[string]string{
			"help": "help is an unknown command.\nUsage: java AlluxioShell\n       [cat <path>]\n       [ls <path>]\n",
		},
	}
	interp := openInterpreter(t, stub)

	res, err := interp.Execute(context.Background(), "help")
	require.NoError(t, err)

	assert.Equal(t, CodeSuccess, res.Code)
	assert.Equal(t, "       [cat <path>]\n       [ls <path>]\n\n", res.Output)
	assert.Equal(t, 100, interp.Progress())

	// The help pseudo-command is never forwarded to the runner.
	assert.Empty(t, stub.commandCalls())
}

func TestHelpTextStripsDisclaimersEverywhere(t *testing.T) {
	raw := strings.Repeat("help is an unknown command.\nUsage: java AlluxioShell\n", 2) + "usage body\n"
	stub := &stubRunner{output: map[string]string{"help": raw}}
	interp := openInterpreter(t, stub)

	help := interp.HelpText()

	assert.Equal(t, "usage body\n", help)
	assert.NotContains(t, help, "unknown command")
	assert.NotContains(t, help, "AlluxioShell")
}

func TestHelpTextFailureKeepsPlaceholder(t *testing.T) {
	stub := &stubRunner{} // no output scripted for "help"
	interp := openInterpreter(t, stub)

	assert.Equal(t, "undefined", interp.HelpText())

	res, err := interp.Execute(context.Background(), "help")
	require.NoError(t, err)
	assert.Equal(t, "undefined\n", res.Output)
}

func TestExecuteBeforeOpen(t *testing.T) {
	interp := New(properties.Default())

	_, err := interp.Execute(context.Background(), "ls /")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestOpenTwice(t *testing.T) {
	stub := &stubRunner{}
	interp := openInterpreter(t, stub)

	err := interp.Open(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyOpen)
}

func TestCloseSwallowsReleaseFailure(t *testing.T) {
	stub := &stubRunner{closeErr: errors.New("release failed")}
	interp := openInterpreter(t, stub)

	interp.Close(context.Background())

	assert.True(t, stub.closed)

	_, err := interp.Execute(context.Background(), "ls /")
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestCancelIsANoOp(t *testing.T) {
	stub := &stubRunner{output: map[string]string{"ls /": "file1\n"}}
	interp := openInterpreter(t, stub)

	interp.Cancel(context.Background())

	res, err := interp.Execute(context.Background(), "ls /")
	require.NoError(t, err)
	assert.Equal(t, CodeSuccess, res.Code)
}

func TestExecuteReportsProgressEvents(t *testing.T) {
	stub := &stubRunner{exitCodes: map[string]int{"bad": 1}}

	var events []progress.Event

	interp := openInterpreter(t, stub, WithReporter(recorderReporter{&events}))

	_, err := interp.Execute(context.Background(), "ls /\nbad")
	require.NoError(t, err)

	types := make([]progress.EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}

	assert.Equal(t, []progress.EventType{
		progress.EventBatchStarted,
		progress.EventCommandStarted,
		progress.EventCommandCompleted,
		progress.EventCommandStarted,
		progress.EventCommandFailed,
		progress.EventBatchCompleted,
	}, types)

	failed := events[4]
	assert.Equal(t, 1, failed.Index)
	assert.Equal(t, "bad", failed.Command)
	assert.Equal(t, 1, failed.ExitCode)
	assert.Equal(t, 50, failed.Percent)
}

// recorderReporter appends events to a slice; execution is single-threaded
// so no locking is needed.
type recorderReporter struct {
	events *[]progress.Event
}

func (r recorderReporter) Report(e progress.Event) { *r.events = append(*r.events, e) }
func (r recorderReporter) Close()                  {}
