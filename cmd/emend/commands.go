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
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "emend").
		WithSynopsis("emend [opts] command [opts]").
		WithDescription("emend is a tool for position-faithful source rewrites.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return emendMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			SpanCommand(cfg),
			DumpCommand(cfg),
			DiffCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("apply").
		WithAliases("a", "ap").
		WithSynopsis("apply [opts] <patchfile> [files]").
		WithDescription("apply a patch document to source files").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
	cfg.Apply = cmd
	return cmd
}

func SpanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SpanConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Span, "span").
		WithAliases("s", "sp").
		WithSynopsis("span [opts] <expr> [files]").
		WithDescription("resolve the source range of matching nodes in tree documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return spanCmd(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [go-files]").
		WithDescription("parse Go sources and dump trees with comments").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two text files line by line").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCmd(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
