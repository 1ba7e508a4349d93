// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTrackerZeroBatch(t *testing.T) {
	tr := &Tracker{}
	assert.Equal(t, 0, tr.Percent())

	tr.Reset(0)
	assert.Equal(t, 0, tr.Percent())
}

func TestTrackerPercentTruncates(t *testing.T) {
	tr := &Tracker{}
	tr.Reset(3)

	tr.MarkDone()
	assert.Equal(t, 33, tr.Percent())

	tr.MarkDone()
	assert.Equal(t, 66, tr.Percent())

	tr.MarkDone()
	assert.Equal(t, 100, tr.Percent())
}

func TestTrackerResetClearsCompleted(t *testing.T) {
	tr := &Tracker{}
	tr.Reset(2)
	tr.MarkDone()
	tr.MarkDone()
	require.Equal(t, 100, tr.Percent())

	tr.Reset(4)

	completed, total := tr.Snapshot()
	assert.Equal(t, 0, completed)
	assert.Equal(t, 4, total)
}

func TestChannelReporterDeliversEvents(t *testing.T) {
	defer goleak.VerifyNone(t)

	cr := NewChannelReporter(context.Background(), 8)

	var (
		mu   sync.Mutex
		seen []Event
	)

	cr.Listen(func(e Event) {
		mu.Lock()
		seen = append(seen, e)
		mu.Unlock()
	})

	cr.Report(Event{Type: EventCommandStarted, Index: 0, Command: "ls /"})
	cr.Report(Event{Type: EventCommandCompleted, Index: 0, Command: "ls /", Percent: 100})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 2
	}, time.Second, 5*time.Millisecond)

	cr.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, EventCommandStarted, seen[0].Type)
	assert.Equal(t, EventCommandCompleted, seen[1].Type)
}

func TestChannelReporterDropsWhenFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	cr := NewChannelReporter(context.Background(), 1)
	defer cr.Close()

	cr.Report(Event{Type: EventCommandStarted})
	cr.Report(Event{Type: EventCommandCompleted}) // dropped, buffer full

	assert.Len(t, cr.Events(), 1)
}

func TestChannelReporterCloseIsIdempotent(t *testing.T) {
	defer goleak.VerifyNone(t)

	cr := NewChannelReporter(context.Background(), 1)
	cr.Close()
	cr.Close()

	// Reporting after close must not panic.
	cr.Report(Event{Type: EventBatchCompleted})
}
