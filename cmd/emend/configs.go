package main

import (
	"os"

	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored diff output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type ApplyConfig struct {
	*MainConfig
	DiffOut bool `cli:"name=d aliases=diff desc='print a diff instead of the result'"`

	Apply *cli.Command
}

type SpanConfig struct {
	*MainConfig
	Comments bool `cli:"name=c aliases=comments desc='extend the span to leading comments'"`

	Span *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
