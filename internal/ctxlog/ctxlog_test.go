// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := New(context.Background(), custom)
	assert.Same(t, custom, Logger(ctx))

	ctx = New(context.Background(), nil)
	assert.Same(t, DefaultLogger, Logger(ctx))
}

func TestLoggerWithoutContextValue(t *testing.T) {
	assert.Same(t, DefaultLogger, Logger(context.Background()))
}

func TestNewQuietWritesToGivenWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := NewQuiet(context.Background(), buf)

	Error(ctx, "quiet message", "key", "value")

	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), "quiet message")
	assert.Contains(t, buf.String(), "key=value")
}

func TestPrettyHandlerOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewPrettyHandler(&slog.HandlerOptions{
		Level: slog.LevelDebug,
	},
		WithDestinationWriter(buf),
	)
	logger := slog.New(handler)

	logger.Info("hello", "answer", 42)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "42")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestPrettyHandlerLevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := NewPrettyHandler(&slog.HandlerOptions{
		Level: slog.LevelWarn,
	},
		WithDestinationWriter(buf),
	)
	logger := slog.New(handler)

	logger.Debug("should not appear")
	logger.Warn("should appear")

	assert.NotContains(t, buf.String(), "should not appear")
	assert.Contains(t, buf.String(), "should appear")
}
