// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"context"
	"sync"
)

// ChannelReporter implements Reporter on top of a buffered channel.
type ChannelReporter struct {
	ch     chan Event
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewChannelReporter creates a ChannelReporter with the given buffer size.
// A larger buffer reduces the chance of dropped events under a slow
// listener.
func NewChannelReporter(ctx context.Context, bufferSize int) *ChannelReporter {
	reporterCtx, cancel := context.WithCancel(ctx)

	return &ChannelReporter{
		ch:     make(chan Event, bufferSize),
		ctx:    reporterCtx,
		cancel: cancel,
	}
}

// Report implements Reporter. It never blocks: when the channel is full or
// the reporter is closed the event is dropped.
func (cr *ChannelReporter) Report(event Event) {
	select {
	case <-cr.ctx.Done():
		return
	default:
	}

	select {
	case cr.ch <- event:
	case <-cr.ctx.Done():
	default:
	}
}

// Close implements Reporter. Safe to call more than once.
func (cr *ChannelReporter) Close() {
	cr.once.Do(func() {
		cr.cancel()
		close(cr.ch)
		cr.wg.Wait()
	})
}

// Listen forwards events to fn on a new goroutine until the reporter is
// closed or the context is cancelled.
func (cr *ChannelReporter) Listen(fn func(Event)) {
	cr.wg.Add(1)

	go func() {
		defer cr.wg.Done()

		for {
			select {
			case event, ok := <-cr.ch:
				if !ok {
					return
				}

				fn(event)
			case <-cr.ctx.Done():
				return
			}
		}
	}()
}

// Events returns the read-only event channel for manual consumption.
func (cr *ChannelReporter) Events() <-chan Event {
	return cr.ch
}
