package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires at least one extended key", cli.ErrUsage)
	}
	d, err := cfg.dict()
	if err != nil {
		return err
	}
	failed := false
	for _, arg := range args {
		v, err := d.Get(arg)
		if err != nil {
			failed = true
			if cfg.useColor() {
				fmt.Fprintln(os.Stderr, color.RedString("%s: %v", arg, err))
			} else {
				fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			}
			continue
		}
		fmt.Fprintf(cc.Out, "%v\n", v)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
