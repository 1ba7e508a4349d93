// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package progress tracks how far through a command batch the interpreter
// is, and publishes per-command lifecycle events for display layers.
package progress

import "sync/atomic"

// Tracker counts completed commands against a batch total.
//
// The executing goroutine writes and the notebook host polls from another
// goroutine, so the counters are atomic. Reset starts a new batch and
// invalidates the previous one's counts.
type Tracker struct {
	total     atomic.Int64
	completed atomic.Int64
}

// Reset starts tracking a new batch of the given size.
func (t *Tracker) Reset(total int) {
	t.total.Store(int64(total))
	t.completed.Store(0)
}

// MarkDone records one completed command.
func (t *Tracker) MarkDone() {
	t.completed.Add(1)
}

// Percent returns the truncated completion percentage, or 0 when no batch
// has been tracked or the batch was empty.
func (t *Tracker) Percent() int {
	total := t.total.Load()
	if total == 0 {
		return 0
	}

	return int(t.completed.Load() * 100 / total)
}

// Snapshot returns the completed and total command counts.
func (t *Tracker) Snapshot() (completed, total int) {
	return int(t.completed.Load()), int(t.total.Load())
}
