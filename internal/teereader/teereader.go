// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package teereader

import (
	"io"
	"strings"
	"sync"
)

// LastLineWriter wraps an io.Writer, forwarding every write unchanged
// while tracking the last complete line seen. It is safe for
// concurrent use.
type LastLineWriter struct {
	w        io.Writer
	lastLine string
	partial  strings.Builder
	mu       sync.RWMutex
}

// NewLastLineWriter creates a LastLineWriter forwarding to w.
func NewLastLineWriter(w io.Writer) *LastLineWriter {
	return &LastLineWriter{w: w}
}

// Write implements io.Writer. Data is forwarded to the wrapped writer
// first; line tracking only happens for the bytes that were accepted.
func (lw *LastLineWriter) Write(p []byte) (int, error) {
	n, err := lw.w.Write(p)
	if n > 0 {
		lw.mu.Lock()
		lw.track(string(p[:n]))
		lw.mu.Unlock()
	}

	return n, err //nolint:wrapcheck
}

// track updates the last complete line from newly written data.
// Must be called with the write lock held.
func (lw *LastLineWriter) track(data string) {
	lw.partial.WriteString(data)
	combined := lw.partial.String()

	lines := strings.Split(combined, "\n")
	if len(lines) == 1 {
		// No newline yet, the partial builder already holds the fragment.
		return
	}

	lw.lastLine = lines[len(lines)-2]
	lw.partial.Reset()

	if data[len(data)-1] != '\n' {
		lw.partial.WriteString(lines[len(lines)-1])
	}
}

// LastLine returns the last complete line written. If maxLength > 0 and
// the line is longer, it is truncated and suffixed with "...".
// Returns an empty string before the first complete line.
func (lw *LastLineWriter) LastLine(maxLength int) string {
	lw.mu.RLock()
	defer lw.mu.RUnlock()

	result := lw.lastLine
	if maxLength > 0 && len(result) > maxLength {
		result = result[:maxLength-3] + "..."
	}

	return result
}

// PartialLine returns any data written after the last newline.
func (lw *LastLineWriter) PartialLine() string {
	lw.mu.RLock()
	defer lw.mu.RUnlock()

	return lw.partial.String()
}

// Reset clears the line tracking state. The wrapped writer and anything
// already forwarded to it are not affected.
func (lw *LastLineWriter) Reset() {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.lastLine = ""
	lw.partial.Reset()
}
