// Package match compiles node predicates from expressions.
//
// A matcher is an expr-lang expression evaluated against a small
// environment describing one node: its tag, kind, start position, leaf
// value and child count. Codemods use matchers to select rewrite
// targets without hand-writing tree walks:
//
//	m, err := match.Compile(`tag == "def" && line > 10`)
//	found, err := match.Find(zipper.New(root), m)
package match

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/emend-tools/emend/debug"
	"github.com/emend-tools/emend/ir"
)

type Matcher struct {
	src  string
	prog *vm.Program
}

// Compile builds a matcher from an expression. The expression must
// evaluate to a boolean.
func Compile(src string) (*Matcher, error) {
	prog, err := expr.Compile(src, expr.Env(nodeEnv(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling matcher %q: %w", src, err)
	}
	return &Matcher{src: src, prog: prog}, nil
}

func (m *Matcher) String() string {
	return m.src
}

// Match evaluates the matcher against one node.
func (m *Matcher) Match(n *ir.Node) (bool, error) {
	out, err := expr.Run(m.prog, nodeEnv(n))
	if err != nil {
		return false, fmt.Errorf("matcher %q: %w", m.src, err)
	}
	res, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("matcher %q returned %T", m.src, out)
	}
	if debug.Match() && res {
		debug.Logf("matcher %q hit %s %q\n", m.src, n.Kind, n.Tag)
	}
	return res, nil
}

func nodeEnv(n *ir.Node) map[string]any {
	env := map[string]any{
		"tag":      "",
		"kind":     "",
		"leaf":     false,
		"line":     0,
		"column":   0,
		"value":    any(nil),
		"children": 0,
	}
	if n == nil {
		return env
	}
	env["tag"] = n.Tag
	env["kind"] = n.Kind.String()
	env["leaf"] = n.IsLeaf()
	env["children"] = len(n.Children)
	if p := n.Meta.Start(); p != nil {
		env["line"] = p.Line
		env["column"] = p.Column
	}
	switch n.Kind {
	case ir.StringKind, ir.SymbolKind:
		env["value"] = n.String
	case ir.NumberKind:
		if n.Int64 != nil {
			env["value"] = *n.Int64
		} else if n.Float64 != nil {
			env["value"] = *n.Float64
		}
	case ir.BoolKind:
		env["value"] = n.Bool
	}
	return env
}
