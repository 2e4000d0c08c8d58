package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: keys takes no arguments", cli.ErrUsage)
	}
	d, err := cfg.dict()
	if err != nil {
		return err
	}
	for _, k := range d.Keys() {
		if cfg.useColor() {
			fmt.Fprintln(cc.Out, color.CyanString("%s", k))
			continue
		}
		fmt.Fprintln(cc.Out, k)
	}
	return nil
}
