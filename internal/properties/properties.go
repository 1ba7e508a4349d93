// Copyright (c) att-innovate 2026. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package properties loads the interpreter configuration.
//
// Configuration is a flat YAML document. Every field has a sensible
// default, so a missing file yields a usable configuration for a local
// Alluxio master.
package properties

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

const (
	// EnvMasterHostname overrides the configured master hostname.
	EnvMasterHostname = "ALLUXIO_MASTER_HOSTNAME"
	// EnvMasterPort overrides the configured master port.
	EnvMasterPort = "ALLUXIO_MASTER_PORT"

	defaultMasterHostname = "localhost"
	defaultMasterPort     = "19998"
	defaultShellPath      = "alluxio"
)

// ErrUnmarshalProperties is returned when the YAML document cannot be decoded.
var ErrUnmarshalProperties = errors.New("failed to unmarshal properties")

// FsFactory returns the filesystem used to read property files.
// Tests replace it with an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Properties holds the connection and shell parameters for the wrapped
// Alluxio command-line client.
type Properties struct {
	// MasterHostname is the Alluxio master host the shell connects to.
	MasterHostname string `yaml:"master_hostname"`
	// MasterPort is the Alluxio master port, kept as a string because it is
	// passed through to the shell's environment verbatim.
	MasterPort string `yaml:"master_port"`
	// ShellPath is the Alluxio CLI executable name or path.
	ShellPath string `yaml:"shell_path"`
	// ShellArgs are arguments prepended to every command, e.g. ["fs"].
	ShellArgs []string `yaml:"shell_args"`
	// Env holds additional environment variables for the shell process.
	Env map[string]string `yaml:"env"`
}

// Default returns the configuration for a local Alluxio master.
func Default() *Properties {
	return &Properties{
		MasterHostname: defaultMasterHostname,
		MasterPort:     defaultMasterPort,
		ShellPath:      defaultShellPath,
		ShellArgs:      []string{"fs"},
		Env:            map[string]string{},
	}
}

// Load reads properties from path on the given filesystem. A missing file
// is not an error: defaults are returned. Environment overrides are applied
// after the file is read.
func Load(fsys afero.Fs, path string) (*Properties, error) {
	props := Default()

	content, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			props.applyEnvOverrides()
			return props, nil
		}

		return nil, fmt.Errorf("failed to read properties file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, props); err != nil {
		return nil, errors.Join(ErrUnmarshalProperties, err)
	}

	props.applyEnvOverrides()

	return props, nil
}

// Environ returns the environment variable pairs the shell process needs,
// to be appended to the parent environment.
func (p *Properties) Environ() []string {
	env := []string{
		EnvMasterHostname + "=" + p.MasterHostname,
		EnvMasterPort + "=" + p.MasterPort,
	}

	for k, v := range p.Env {
		env = append(env, k+"="+v)
	}

	return env
}

func (p *Properties) applyEnvOverrides() {
	if v := os.Getenv(EnvMasterHostname); v != "" {
		p.MasterHostname = v
	}

	if v := os.Getenv(EnvMasterPort); v != "" {
		p.MasterPort = v
	}
}
