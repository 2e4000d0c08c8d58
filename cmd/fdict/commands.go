package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "f",
		Aliases:     []string{"file"},
		Description: "YAML file of key/value entries",
		Type:        cli.NamedFuncOpt(cfg.fileOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "fdict").
		WithSynopsis("fdict [opts] command [opts]").
		WithDescription("fdict resolves extended keys against a key/value file.").
		WithOpts(opts...).
		WithSubs(
			GetCommand(cfg),
			KeysCommand(cfg),
			TransformsCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <extended-key> [extended-key...]").
		WithDescription("resolve extended keys, printing one value per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("keys").
		WithAliases("k").
		WithSynopsis("keys").
		WithDescription("list the container's keys").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
	cfg.Keys = cmd
	return cmd
}

func TransformsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TransformsConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("transforms").
		WithAliases("t").
		WithSynopsis("transforms").
		WithDescription("list registered transform names").
		WithRun(func(cc *cli.Context, args []string) error {
			return transforms(cfg, cc, args)
		})
	cfg.Transforms = cmd
	return cmd
}
