// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/att-innovate/zeppelin/cmd/config"
	"github.com/att-innovate/zeppelin/cmd/exec"
	"github.com/att-innovate/zeppelin/cmd/repl"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		exec.ExecCmd,
		repl.ReplCmd,
		config.ConfigCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "zeppelin",
	Description: `Zeppelin is a notebook interpreter adapter for the Alluxio distributed
storage system. It forwards line-oriented shell commands to the Alluxio
command-line client, captures the combined output, and reports execution
progress and tab-completion candidates.`,
	Usage:                 "zeppelin exec -f commands.txt",
	EnableShellCompletion: true,
}
