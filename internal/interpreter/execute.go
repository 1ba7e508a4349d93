// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package interpreter

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/att-innovate/zeppelin/internal/ctxlog"
	"github.com/att-innovate/zeppelin/internal/progress"
	"github.com/att-innovate/zeppelin/internal/teereader"
)

// lastLineMax bounds the output line carried on progress events so
// live views stay on one row.
const lastLineMax = 80

// Execute splits text into commands and runs them in order, stopping at
// the first failure. All runner output is captured into the returned
// Result and never reaches the interpreter's ambient output: each runner
// invocation writes to the batch's buffer, so there is no redirection
// state to restore on any exit path.
//
// Command failures are reported through the Result's outcome tag. The
// returned error is non-nil only when the interpreter has not been opened.
func (i *Interpreter) Execute(ctx context.Context, text string) (*Result, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.runner == nil {
		return nil, ErrNotOpen
	}

	batch := parseBatch(text)
	i.tracker.Reset(len(batch))

	i.report(progress.Event{Type: progress.EventBatchStarted})

	var buf bytes.Buffer

	tee := teereader.NewLastLineWriter(&buf)

	res := &Result{
		Code:        CodeSuccess,
		FailedIndex: -1,
	}

	for idx, cmd := range batch {
		tee.Reset()
		i.report(progress.Event{
			Type:    progress.EventCommandStarted,
			Index:   idx,
			Command: cmd.raw,
			Percent: i.tracker.Percent(),
		})

		if cmd.argv[0] == helpKeyword {
			fmt.Fprintln(tee, i.helpText)
			i.tracker.MarkDone()
			i.report(progress.Event{
				Type:    progress.EventCommandCompleted,
				Index:   idx,
				Command: cmd.raw,
				Percent: i.tracker.Percent(),
			})

			continue
		}

		status := i.runner.Run(ctx, cmd.argv, tee)
		if status != 0 {
			ctxlog.Debug(ctx, "command failed, halting batch",
				"command", cmd.raw,
				"index", idx,
				"exitStatus", status,
			)

			res.Code = CodeError
			res.FailedIndex = idx
			res.FailedCommand = cmd.raw
			res.ExitStatus = status

			i.report(progress.Event{
				Type:     progress.EventCommandFailed,
				Index:    idx,
				Command:  cmd.raw,
				ExitCode: status,
				LastLine: tee.LastLine(lastLineMax),
				Percent:  i.tracker.Percent(),
			})

			break
		}

		fmt.Fprintln(tee)
		i.tracker.MarkDone()
		i.report(progress.Event{
			Type:     progress.EventCommandCompleted,
			Index:    idx,
			Command:  cmd.raw,
			LastLine: tee.LastLine(lastLineMax),
			Percent:  i.tracker.Percent(),
		})
	}

	res.Output = buf.String()

	i.report(progress.Event{
		Type:    progress.EventBatchCompleted,
		Percent: i.tracker.Percent(),
	})

	return res, nil
}

func (i *Interpreter) report(event progress.Event) {
	event.Timestamp = time.Now()
	i.reporter.Report(event)
}
