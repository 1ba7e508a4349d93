// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import "time"

// EventType represents the type of progress event.
type EventType int

const (
	// EventBatchStarted indicates a new batch has begun execution.
	EventBatchStarted EventType = iota
	// EventCommandStarted indicates a command has begun execution.
	EventCommandStarted
	// EventCommandCompleted indicates a command finished successfully.
	EventCommandCompleted
	// EventCommandFailed indicates a command returned a non-zero status.
	EventCommandFailed
	// EventBatchCompleted indicates the batch finished, successfully or not.
	EventBatchCompleted
)

// String implements the Stringer interface for EventType.
func (et EventType) String() string {
	switch et {
	case EventBatchStarted:
		return "batch started"
	case EventCommandStarted:
		return "command started"
	case EventCommandCompleted:
		return "command completed"
	case EventCommandFailed:
		return "command failed"
	case EventBatchCompleted:
		return "batch completed"
	default:
		return "unknown"
	}
}

// Event is a real-time update from batch execution.
type Event struct {
	Type      EventType // What happened
	Index     int       // Zero-based position of the command in the batch
	Command   string    // The raw command line, empty for batch-level events
	ExitCode  int       // Exit status for EventCommandFailed
	LastLine  string    // Last complete output line from the command
	Percent   int       // Batch completion percentage after this event
	Timestamp time.Time // When the event occurred
}

// Reporter is the interface for sending progress events.
// Implementations must be non-blocking: the interpreter's execute loop
// calls Report inline.
type Reporter interface {
	// Report sends a progress event.
	Report(event Event)
	// Close signals that no more events will be sent.
	Close()
}

// NullReporter is a no-op Reporter, used when nothing is listening.
type NullReporter struct{}

// Report implements Reporter by doing nothing.
func (NullReporter) Report(Event) {}

// Close implements Reporter by doing nothing.
func (NullReporter) Close() {}

// NewNullReporter creates a new NullReporter.
func NewNullReporter() Reporter {
	return NullReporter{}
}
