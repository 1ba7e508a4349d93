// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the zeppelin command-line application.
package main

import (
	"context"
	"os"

	"github.com/att-innovate/zeppelin/cmd"
	"github.com/att-innovate/zeppelin/internal/ctxlog"
	"github.com/att-innovate/zeppelin/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	if err := cmd.RootCmd.Run(ctx, os.Args); err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
