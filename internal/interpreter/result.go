// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package interpreter

// Code is the outcome tag of a batch execution.
type Code int

const (
	// CodeSuccess means every command in the batch completed.
	CodeSuccess Code = iota
	// CodeError means a command failed and the batch was cut short.
	CodeError
)

// String implements the Stringer interface for Code.
func (c Code) String() string {
	switch c {
	case CodeSuccess:
		return "success"
	case CodeError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of one batch execution: the outcome tag plus the
// combined captured output. When a command failed, FailedIndex and
// FailedCommand identify it; the output alone does not reliably say which
// command broke the batch.
type Result struct {
	Code          Code
	Output        string
	FailedIndex   int    // zero-based position of the failing command, -1 when none
	FailedCommand string // raw text of the failing command, empty when none
	ExitStatus    int    // exit status of the failing command, 0 when none
}

// Failed reports whether the batch was cut short by a failing command.
func (r *Result) Failed() bool {
	return r.Code == CodeError
}
