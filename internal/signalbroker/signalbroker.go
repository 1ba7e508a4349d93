// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package signalbroker listens for OS termination signals.
//
// The watchdog cancels the root context on the second signal of the same
// type. The first signal is deliberately a no-op: an in-flight storage
// shell command cannot be interrupted, so the process keeps running until
// the user insists.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/att-innovate/zeppelin/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New creates a buffered channel subscribed to the given signals,
// defaulting to the usual termination set.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Watch monitors the signal channel and cancels the context on the second
// signal of a given type. It returns when the channel is closed or the
// context is cancelled.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Info(ctx, "watchdog", "detail", "received second signal of type, terminating", "signal", sig.String())
			signal.Stop(sigCh)
			close(sigCh)
			cancel()

			return
		}

		ctxlog.Info(ctx, "watchdog", "detail", "received first signal of type, ignoring", "signal", sig.String())

		seen[sig] = struct{}{}
	}
}
