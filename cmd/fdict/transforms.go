package main

import (
	"fmt"

	"github.com/fdict-format/fdict/transform"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func transforms(cfg *TransformsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Transforms.Parse(cc, args)
	if err != nil {
		cfg.Transforms.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: transforms takes no arguments", cli.ErrUsage)
	}
	for _, name := range transform.Names() {
		if cfg.useColor() {
			fmt.Fprintln(cc.Out, color.CyanString("%s", name))
			continue
		}
		fmt.Fprintln(cc.Out, name)
	}
	return nil
}
