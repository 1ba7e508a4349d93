// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package interpreter

import "strings"

// command is one non-empty input line and its whitespace-separated
// argument vector.
type command struct {
	raw  string
	argv []string
}

// parseBatch splits a text block into commands, one per non-blank line.
// Tokens are separated by any run of whitespace; empty tokens are
// discarded.
func parseBatch(text string) []command {
	lines := strings.Split(text, "\n")

	batch := make([]command, 0, len(lines))

	for _, line := range lines {
		argv := strings.Fields(line)
		if len(argv) == 0 {
			continue
		}

		batch = append(batch, command{
			raw:  strings.TrimSpace(line),
			argv: argv,
		})
	}

	return batch
}
