// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package exec implements the command that runs a batch of Alluxio shell
// commands and prints the captured output.
package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-getter/v2"
	"github.com/urfave/cli/v3"

	"github.com/att-innovate/zeppelin/internal/ctxlog"
	"github.com/att-innovate/zeppelin/internal/interpreter"
	"github.com/att-innovate/zeppelin/internal/progress"
	"github.com/att-innovate/zeppelin/internal/properties"
	"github.com/att-innovate/zeppelin/internal/tui"
)

const (
	commandsArg    = "commands"
	fileFlag       = "file"
	propertiesFlag = "properties"
	tuiFlag        = "tui"
)

var (
	// ErrGetScript is returned when the command script cannot be fetched.
	ErrGetScript = errors.New("failed to get command script")
	// ErrNoInput is returned when neither an argument, a file nor stdin
	// provides commands.
	ErrNoInput = errors.New("no commands provided")

	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// ExecCmd runs a batch of commands against the Alluxio shell.
var ExecCmd = &cli.Command{
	Name: "exec",
	Description: `Run a batch of Alluxio shell commands, one per line.
Commands may be passed as an argument, read from a file or URL with --file,
or piped on stdin. File URLs use Hashicorp's go-getter syntax.

Execution stops at the first failing command; the captured output up to and
including that command is still printed.`,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      commandsArg,
			UsageText: "[COMMANDS]",
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     fileFlag,
			Aliases:  []string{"f"},
			Usage:    "URL of the command script to run, in go-getter syntax",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:      propertiesFlag,
			Aliases:   []string{"p"},
			Usage:     "Path to the interpreter properties YAML file",
			TakesFile: true,
			OnlyOnce:  true,
		},
		&cli.BoolFlag{
			Name:        tuiFlag,
			Aliases:     []string{"t"},
			Usage:       "Show interactive progress while the batch runs",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	logger := ctxlog.Logger(ctx).With("command", cmd.Name)

	props, err := properties.Load(properties.FsFactory(), cmd.String(propertiesFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load properties: %s", err.Error()), 1)
	}

	text, err := commandText(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	var res *interpreter.Result

	switch cmd.Bool(tuiFlag) {
	case true:
		res, err = tui.Run(ctx, func(ctx context.Context, reporter progress.Reporter) (*interpreter.Result, error) {
			interp := interpreter.New(props, interpreter.WithReporter(reporter))
			if err := interp.Open(ctx); err != nil {
				return nil, err
			}

			defer interp.Close(ctx)

			return interp.Execute(ctx, text)
		})
	default:
		interp := interpreter.New(props)
		if err = interp.Open(ctx); err == nil {
			defer interp.Close(ctx)

			res, err = interp.Execute(ctx, text)
		}
	}

	if err != nil {
		logger.Error("batch execution failed", "error", err)
		return cli.Exit("", 1)
	}

	writeResult(cmd.Writer, res)

	if res.Failed() {
		return cli.Exit("", 1)
	}

	return nil
}

// commandText resolves the batch text from the --file URL, the positional
// argument, or stdin, in that order of precedence.
func commandText(ctx context.Context, cmd *cli.Command) (string, error) {
	if url := cmd.String(fileFlag); url != "" {
		content, err := getURL(ctx, url)
		if err != nil {
			return "", err
		}

		return string(content), nil
	}

	if arg := cmd.StringArg(commandsArg); arg != "" {
		return arg, nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Join(ErrNoInput, err)
		}

		return string(content), nil
	}

	return "", ErrNoInput
}

// writeResult prints the captured batch output followed by a styled
// outcome banner.
func writeResult(w io.Writer, res *interpreter.Result) {
	fmt.Fprint(w, res.Output)

	if res.Failed() {
		fmt.Fprintln(w, styleError.Render(
			fmt.Sprintf("Command %d (%s) failed with status %d, remaining commands skipped",
				res.FailedIndex+1, res.FailedCommand, res.ExitStatus),
		))

		return
	}

	fmt.Fprintln(w, styleSuccess.Render("Batch completed successfully"))
}

// getURL retrieves the script content from the given URL using Hashicorp's
// go-getter and removes the temporary copy after reading it.
func getURL(ctx context.Context, url string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "zeppelin-getter-*")
	if err != nil {
		return nil, errors.Join(ErrGetScript, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrGetScript, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	dst := filepath.Join(tmpDir, "script")

	req := &getter.Request{
		Src:     url,
		Dst:     dst,
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	if _, err := client.Get(ctx, req); err != nil {
		return nil, errors.Join(ErrGetScript, err)
	}

	content, err := os.ReadFile(dst)
	if err != nil {
		return nil, errors.Join(ErrGetScript, err)
	}

	return content, nil
}
