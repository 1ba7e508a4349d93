// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package signalbroker

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatchCancelsOnSecondSignal(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)

	done := make(chan struct{})

	go func() {
		Watch(ctx, sigCh, cancel)
		close(done)
	}()

	sigCh <- syscall.SIGINT

	select {
	case <-ctx.Done():
		t.Fatal("context cancelled after first signal")
	case <-time.After(50 * time.Millisecond):
	}

	sigCh <- syscall.SIGINT

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watchdog did not return after second signal")
	}

	require.Error(t, ctx.Err())
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestWatchDistinctSignalsDoNotCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)

	done := make(chan struct{})

	go func() {
		Watch(ctx, sigCh, cancel)
		close(done)
	}()

	sigCh <- syscall.SIGINT
	sigCh <- syscall.SIGTERM

	select {
	case <-ctx.Done():
		t.Fatal("context cancelled by two distinct signals")
	case <-time.After(50 * time.Millisecond):
	}

	close(sigCh)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watchdog did not return after channel close")
	}
}
