// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config implements the command that shows the effective
// interpreter configuration.
package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/urfave/cli/v3"

	"github.com/att-innovate/zeppelin/internal/completion"
	"github.com/att-innovate/zeppelin/internal/properties"
)

const propertiesFlag = "properties"

// ErrRenderConfig is returned when the configuration cannot be rendered.
var ErrRenderConfig = errors.New("failed to render configuration")

// ConfigCmd shows the effective configuration and the completion keywords.
var ConfigCmd = &cli.Command{
	Name:        "config",
	Description: "Show the effective interpreter configuration after file and environment overrides.",
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

func actionFunc(_ context.Context, cmd *cli.Command) error {
	props, err := properties.Load(properties.FsFactory(), cmd.String(propertiesFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load properties: %s", err.Error()), 1)
	}

	effective := map[string]any{
		"master_hostname": props.MasterHostname,
		"master_port":     props.MasterPort,
		"shell_path":      props.ShellPath,
		"shell_args":      props.ShellArgs,
		"env":             props.Env,
		"keywords":        completion.New().Keywords(),
	}

	formatter := colorjson.NewFormatter()
	formatter.Indent = 2

	rendered, err := formatter.Marshal(effective)
	if err != nil {
		return errors.Join(ErrRenderConfig, err)
	}

	fmt.Fprintln(cmd.Writer, string(rendered))

	return nil
}
