// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package teereader provides a writer that forwards captured command
// output while tracking the most recent complete line, so live views
// can show what a command is currently printing without re-scanning
// the whole capture buffer.
package teereader
