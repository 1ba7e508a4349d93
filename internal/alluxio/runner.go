// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package alluxio wraps the Alluxio command-line client as an opaque
// command runner: an argument vector goes in, an exit status comes out,
// and whatever the client prints is written to the supplied sink.
package alluxio

import (
	"context"
	"io"
)

// Runner executes a single shell command against the storage system.
//
// Run writes all human-readable output to w for the duration of the call
// and returns the command's exit status, 0 meaning success. Implementations
// are synchronous: Run returns only once the command has finished.
type Runner interface {
	Run(ctx context.Context, argv []string, w io.Writer) int
	Close() error
}
