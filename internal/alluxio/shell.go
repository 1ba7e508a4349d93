// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package alluxio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"

	"github.com/att-innovate/zeppelin/internal/ctxlog"
	"github.com/att-innovate/zeppelin/internal/properties"
)

var (
	// ErrShellNotFound is returned when the Alluxio CLI executable cannot be
	// located.
	ErrShellNotFound = errors.New("alluxio shell executable not found")
	// ErrShellClosed is returned by Run after Close.
	ErrShellClosed = errors.New("alluxio shell is closed")
)

// exit status used when the process cannot be started or was not run.
const exitStatusInternal = -1

var _ Runner = (*Shell)(nil)

// Shell runs commands by executing the Alluxio CLI, e.g. "alluxio fs ls /".
// The master host and port travel to the child process via its environment.
type Shell struct {
	path     string
	baseArgs []string
	env      []string
	closed   bool
}

// NewShell locates the CLI executable named by the properties and binds the
// master connection parameters into the child environment.
func NewShell(ctx context.Context, props *properties.Properties) (*Shell, error) {
	path, err := exec.LookPath(props.ShellPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrShellNotFound, props.ShellPath, err)
	}

	ctxlog.Info(ctx, "starting alluxio shell",
		"path", path,
		"masterHostname", props.MasterHostname,
		"masterPort", props.MasterPort,
	)

	return &Shell{
		path:     path,
		baseArgs: slices.Clone(props.ShellArgs),
		env:      append(os.Environ(), props.Environ()...),
	}, nil
}

// Run implements Runner. The command's stdout and stderr both go to w,
// preserving the interleaving the CLI produced. Failures to start the
// process are reported on w and mapped to a non-zero status, matching how
// the CLI itself reports bad commands.
func (s *Shell) Run(ctx context.Context, argv []string, w io.Writer) int {
	if len(argv) == 0 {
		return 0
	}

	if s.closed {
		fmt.Fprintln(w, ErrShellClosed.Error())
		return exitStatusInternal
	}

	args := slices.Concat(s.baseArgs, argv)

	cmd := exec.CommandContext(ctx, s.path, args...)
	cmd.Env = s.env
	cmd.Stdout = w
	cmd.Stderr = w

	ctxlog.Debug(ctx, "running shell command", "path", s.path, "args", args)

	err := cmd.Run()
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		ctxlog.Debug(ctx, "shell command failed", "args", args, "exitCode", exitErr.ExitCode())
		return exitErr.ExitCode()
	}

	// The process never ran; surface the reason in the captured output.
	fmt.Fprintln(w, err.Error())
	ctxlog.Debug(ctx, "shell command could not start", "args", args, "error", err)

	return exitStatusInternal
}

// Close implements Runner. The exec-based client holds no persistent
// connection, so Close only marks the shell unusable.
func (s *Shell) Close() error {
	s.closed = true
	return nil
}
