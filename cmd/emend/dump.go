package main

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/emend-tools/emend/decode"
	"github.com/emend-tools/emend/sitter"

	"github.com/scott-cotton/cli"
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	lang := tree_sitter.NewLanguage(unsafe.Pointer(tree_sitter_go.Language()))
	for _, arg := range args {
		if err := dumpArg(cc.Out, arg, lang); err != nil {
			return fmt.Errorf("error dumping %s: %w", arg, err)
		}
	}
	return nil
}

func dumpArg(w io.Writer, arg string, lang *tree_sitter.Language) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	root, comments, err := sitter.Parse(d, lang)
	if err != nil {
		return err
	}
	return decode.Encode(root, comments, w)
}
