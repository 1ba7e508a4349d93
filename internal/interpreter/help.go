// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package interpreter

import (
	"bytes"
	"context"
	"strings"

	"github.com/att-innovate/zeppelin/internal/ctxlog"
)

const (
	// helpKeyword is served from the cached help text instead of being
	// forwarded to the external runner.
	helpKeyword = "help"

	// helpPlaceholder is served until help-text initialization succeeds.
	helpPlaceholder = "undefined"

	// Fixed lines the CLI prints when asked for "help"; both are noise in
	// notebook output and are stripped wherever they appear.
	unknownCommandLine = "help is an unknown command.\n"
	usageBannerLine    = "Usage: java AlluxioShell\n"
)

// initHelpText asks the external runner for its usage text and caches a
// cleaned copy. Failure is non-fatal: the placeholder stays in place and a
// later Open may try again. Callers hold i.mu.
func (i *Interpreter) initHelpText(ctx context.Context) {
	var buf bytes.Buffer

	// The CLI treats "help" as an unknown command and prints its usage,
	// so the exit status carries no signal here.
	i.runner.Run(ctx, []string{helpKeyword}, &buf)

	text := buf.String()
	text = strings.ReplaceAll(text, unknownCommandLine, "")
	text = strings.ReplaceAll(text, usageBannerLine, "")

	if strings.TrimSpace(text) == "" {
		ctxlog.Warn(ctx, "help text initialization produced no output, keeping placeholder")
		return
	}

	i.helpText = text
}

// HelpText returns the cached help text served for the "help" command.
func (i *Interpreter) HelpText() string {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.helpText
}
