// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package completion suggests Alluxio shell command names.
//
// Candidates are matched by prefix against a fixed keyword set and
// returned in the set's declared order. There is no filesystem or argument
// completion: the wrapped CLI's grammar is opaque to this module.
package completion

import "strings"

// DefaultKeywords is the Alluxio shell command set, in display order.
var DefaultKeywords = []string{
	"cat", "chgrp", "chmod", "chown", "copyFromLocal", "copyToLocal",
	"count", "createLineage", "deleteLineage", "du", "fileInfo", "free",
	"getCapacityBytes", "getUsedBytes", "help", "listLineages", "load",
	"loadMetadata", "location", "ls", "mkdir", "mount", "mv", "persist",
	"pin", "report", "rm", "setTtl", "tail", "touch", "unmount", "unpin",
	"unsetTtl",
}

// Candidate is one completion suggestion. Display is shown to the user and
// Insert replaces the partial token; for keyword completion both are the
// keyword itself.
type Candidate struct {
	Display string
	Insert  string
}

// Completer matches keywords by prefix.
type Completer struct {
	keywords []string
}

// New creates a Completer over the given keywords, preserving their order.
// With no keywords the default Alluxio set is used.
func New(keywords ...string) *Completer {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}

	kw := make([]string, len(keywords))
	copy(kw, keywords)

	return &Completer{keywords: kw}
}

// Keywords returns a copy of the keyword set in declared order.
func (c *Completer) Keywords() []string {
	kw := make([]string, len(c.keywords))
	copy(kw, c.keywords)

	return kw
}

// Complete returns every keyword prefixed by the last (possibly partial)
// token before the cursor. An empty partial token matches every keyword.
// The buffer is tokenized the same way batch execution tokenizes commands:
// split on newlines and whitespace, empty tokens discarded.
func (c *Completer) Complete(buffer string, cursor int) []Candidate {
	if cursor >= 0 && cursor < len(buffer) {
		buffer = buffer[:cursor]
	}

	partial := lastToken(buffer)

	candidates := make([]Candidate, 0, len(c.keywords))

	for _, kw := range c.keywords {
		if strings.HasPrefix(kw, partial) {
			candidates = append(candidates, Candidate{Display: kw, Insert: kw})
		}
	}

	return candidates
}

// lastToken returns the final whitespace-separated token of buffer, or the
// empty string when the buffer holds no tokens.
func lastToken(buffer string) string {
	tokens := strings.Fields(buffer)
	if len(tokens) == 0 {
		return ""
	}

	return tokens[len(tokens)-1]
}
