// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBatch(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []command
	}{
		{
			name: "empty",
			text: "",
			want: []command{},
		},
		{
			name: "blank lines only",
			text: "\n  \n\t\n",
			want: []command{},
		},
		{
			name: "single command",
			text: "ls /",
			want: []command{{raw: "ls /", argv: []string{"ls", "/"}}},
		},
		{
			name: "blank lines between commands are dropped",
			text: "ls /\n\n\nmkdir /tmp/a\n",
			want: []command{
				{raw: "ls /", argv: []string{"ls", "/"}},
				{raw: "mkdir /tmp/a", argv: []string{"mkdir", "/tmp/a"}},
			},
		},
		{
			name: "runs of whitespace collapse",
			text: "  chmod   755    /data  ",
			want: []command{{raw: "chmod   755    /data", argv: []string{"chmod", "755", "/data"}}},
		},
		{
			name: "tabs separate tokens",
			text: "mv\t/a\t/b",
			want: []command{{raw: "mv\t/a\t/b", argv: []string{"mv", "/a", "/b"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBatch(tt.text)

			require.Len(t, got, len(tt.want))

			for i := range tt.want {
				assert.Equal(t, tt.want[i].raw, got[i].raw)
				assert.Equal(t, tt.want[i].argv, got[i].argv)
			}
		})
	}
}
