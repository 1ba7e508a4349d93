// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package repl implements an interactive shell against the Alluxio CLI
// with keyword tab-completion.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/att-innovate/zeppelin/internal/ctxlog"
	"github.com/att-innovate/zeppelin/internal/interpreter"
	"github.com/att-innovate/zeppelin/internal/properties"
)

const (
	propertiesFlag  = "properties"
	historyFileName = ".zeppelin_history"
	prompt          = "alluxio> "
)

// ErrNotATerminal is returned when the repl is started without a terminal.
var ErrNotATerminal = errors.New("repl requires an interactive terminal")

// ReplCmd starts the interactive shell.
var ReplCmd = &cli.Command{
	Name: "repl",
	Description: `Start an interactive Alluxio shell. Each line is executed as a single
command batch; press tab to complete command names. Exit with ctrl-d.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      propertiesFlag,
			Aliases:   []string{"p"},
			Usage:     "Path to the interpreter properties YAML file",
			TakesFile: true,
			OnlyOnce:  true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return cli.Exit(ErrNotATerminal.Error(), 1)
	}

	props, err := properties.Load(properties.FsFactory(), cmd.String(propertiesFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load properties: %s", err.Error()), 1)
	}

	interp := interpreter.New(props)
	if err := interp.Open(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("failed to open interpreter: %s", err.Error()), 1)
	}

	defer interp.Close(ctx)

	line := liner.NewLiner()
	defer line.Close() //nolint:errcheck

	line.SetCtrlCAborts(true)
	line.SetCompleter(completer(interp))

	historyPath := loadHistory(ctx, line)

	fmt.Fprintf(cmd.Writer, "Connected to Alluxio master %s:%s\n", props.MasterHostname, props.MasterPort)

	for {
		input, err := line.Prompt(prompt)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(cmd.Writer)
			saveHistory(ctx, line, historyPath)

			return nil
		case err != nil:
			saveHistory(ctx, line, historyPath)
			return cli.Exit(err.Error(), 1)
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		line.AppendHistory(input)

		res, err := interp.Execute(ctx, input)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		fmt.Fprint(cmd.Writer, res.Output)

		if res.Failed() {
			fmt.Fprintf(cmd.Writer, "command failed with status %d\n", res.ExitStatus)
		}
	}
}

// completer adapts the interpreter's completion surface to liner, which
// expects full replacement lines.
func completer(interp *interpreter.Interpreter) liner.Completer {
	return func(line string) []string {
		candidates := interp.Complete(line, len(line))

		// Everything before the partial token is kept as-is.
		prefix := line
		if idx := strings.LastIndexAny(line, " \t"); idx >= 0 {
			prefix = line[:idx+1]
		} else {
			prefix = ""
		}

		completions := make([]string, 0, len(candidates))
		for _, c := range candidates {
			completions = append(completions, prefix+c.Insert)
		}

		return completions
	}
}

func loadHistory(ctx context.Context, line *liner.State) string {
	home, err := os.UserHomeDir()
	if err != nil {
		ctxlog.Debug(ctx, "cannot resolve home directory, history disabled", "error", err)
		return ""
	}

	path := filepath.Join(home, historyFileName)

	f, err := os.Open(path)
	if err != nil {
		return path
	}

	defer f.Close() //nolint:errcheck

	if _, err := line.ReadHistory(f); err != nil {
		ctxlog.Debug(ctx, "cannot read history", "path", path, "error", err)
	}

	return path
}

func saveHistory(ctx context.Context, line *liner.State, path string) {
	if path == "" {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		ctxlog.Debug(ctx, "cannot write history", "path", path, "error", err)
		return
	}

	defer f.Close() //nolint:errcheck

	if _, err := line.WriteHistory(f); err != nil {
		ctxlog.Debug(ctx, "cannot write history", "path", path, "error", err)
	}
}
