package main

import (
	"fmt"
	"os"

	"github.com/fdict-format/fdict"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	File string

	Main *cli.Command
}

func (cfg *MainConfig) fileOpt(_ *cli.Context, v string) (any, error) {
	cfg.File = v
	return v, nil
}

func (cfg *MainConfig) dict() (*fdict.Dict, error) {
	if cfg.File == "" {
		return fdict.New(), nil
	}
	d, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", cfg.File, err)
	}
	entries := map[string]any{}
	if err := yaml.Unmarshal(d, &entries); err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", cfg.File, err)
	}
	return fdict.New(entries), nil
}

func (cfg *MainConfig) useColor() bool {
	if cfg.Color {
		return true
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type TransformsConfig struct {
	*MainConfig

	Transforms *cli.Command
}
