package main

import (
	"fmt"
	"io"

	"github.com/emend-tools/emend"
	"github.com/emend-tools/emend/decode"
	"github.com/emend-tools/emend/match"
	"github.com/emend-tools/emend/span"
	"github.com/emend-tools/emend/zipper"

	"github.com/scott-cotton/cli"
)

func spanCmd(cfg *SpanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Span.Parse(cc, args)
	if err != nil {
		cfg.Span.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: span requires a match expression argument", cli.ErrUsage)
	}
	m, err := match.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, arg := range args[1:] {
		if err := spanArg(cfg, cc.Out, arg, m); err != nil {
			return fmt.Errorf("error resolving span in %s: %w", arg, err)
		}
	}
	return nil
}

func spanArg(cfg *SpanConfig, w io.Writer, arg string, m *match.Matcher) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	root, comments, err := decode.Decode(d)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	root = emend.Attach(root, comments)
	z, err := match.Find(zipper.New(root), m)
	if err != nil {
		return err
	}
	if z == nil {
		// no match, no output
		return nil
	}
	r := span.Of(z.Node(), span.IncludeComments(cfg.Comments))
	_, err = fmt.Fprintf(w, "%s\n", r)
	return err
}
