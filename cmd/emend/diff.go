package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := readArg(args[0])
	if err != nil {
		return err
	}
	b, err := readArg(args[1])
	if err != nil {
		return err
	}
	cfg.fprintDiff(cc.Out, string(a), string(b))
	return nil
}
