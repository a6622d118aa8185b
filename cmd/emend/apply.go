package main

import (
	"fmt"
	"io"

	"github.com/emend-tools/emend"
	"github.com/emend-tools/emend/patch"
	"github.com/emend-tools/emend/pos"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// patchSpec is one entry of a patch document, a YAML list of edits.
// preserve_indentation defaults to true when absent.
type patchSpec struct {
	Range  patchRange `yaml:"range"`
	Change string     `yaml:"change"`

	PreserveIndentation *bool `yaml:"preserve_indentation"`
}

type patchRange struct {
	Start patchPos `yaml:"start"`
	End   patchPos `yaml:"end"`
}

type patchPos struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: apply requires a patch document argument", cli.ErrUsage)
	}
	patches, err := readPatches(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		if err := applyArg(cfg, cc.Out, arg, patches); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
	}
	return nil
}

func readPatches(arg string) ([]patch.Patch, error) {
	d, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	var specs []patchSpec
	if err := yaml.Unmarshal(d, &specs); err != nil {
		return nil, fmt.Errorf("error decoding patch document %s: %w", arg, err)
	}
	res := make([]patch.Patch, 0, len(specs))
	for _, s := range specs {
		p := patch.New(pos.NewRange(
			pos.New(s.Range.Start.Line, s.Range.Start.Column),
			pos.New(s.Range.End.Line, s.Range.End.Column)), s.Change)
		p.SkipIndentation = s.PreserveIndentation != nil && !*s.PreserveIndentation
		res = append(res, p)
	}
	return res, nil
}

func applyArg(cfg *ApplyConfig, w io.Writer, arg string, patches []patch.Patch) error {
	d, err := readArg(arg)
	if err != nil {
		return err
	}
	before := string(d)
	after := emend.Apply(before, patches)
	if cfg.DiffOut {
		cfg.fprintDiff(w, before, after)
		return nil
	}
	_, err = io.WriteString(w, after)
	return err
}
