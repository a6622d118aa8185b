package span

import (
	"testing"

	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/pos"
)

func blockTree() *ir.Node {
	// if not allowed? do
	//   raise "Not allowed!"
	// end
	return ir.New("if",
		ir.NewMeta(pos.New(1, 1)).
			With("do", pos.New(1, 19)).
			With("end", pos.New(3, 4)),
		ir.New("not", ir.NewMeta(pos.New(1, 4)),
			ir.New("allowed?", ir.NewMeta(pos.New(1, 8)))),
		ir.New("raise", ir.NewMeta(pos.New(2, 3)),
			ir.FromString("Not allowed!")),
	)
}

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		opts []Option
		want pos.Range
	}{
		{
			name: "block ends at latest marker",
			node: blockTree(),
			want: pos.NewRange(pos.New(1, 1), pos.New(3, 4)),
		},
		{
			name: "single token",
			node: ir.New("allowed?", ir.NewMeta(pos.New(1, 8))),
			want: pos.NewRange(pos.New(1, 8), pos.New(1, 8)),
		},
		{
			name: "no metadata falls back to default",
			node: ir.New("x", nil, ir.FromString("y")),
			want: pos.NewRange(pos.New(1, 1), pos.New(1, 1)),
		},
		{
			name: "custom default",
			node: ir.New("x", nil),
			opts: []Option{Default(pos.New(4, 2))},
			want: pos.NewRange(pos.New(4, 2), pos.New(4, 2)),
		},
		{
			name: "deep marker wins over shallow",
			node: ir.New("defmodule",
				ir.NewMeta(pos.New(1, 1)).With("end", pos.New(2, 4)),
				ir.New("def",
					ir.NewMeta(pos.New(5, 3)).With("end", pos.New(9, 6))),
			),
			want: pos.NewRange(pos.New(1, 1), pos.New(9, 6)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Of(tt.node, tt.opts...)
			if got != tt.want {
				t.Errorf("Of = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOfQualifiedAccess(t *testing.T) {
	// foo.bar() starting at foo, dot metadata at the dot token
	base := ir.New("foo", ir.NewMeta(pos.New(2, 1)))
	dot := ir.New(ir.QualifiedTag, ir.NewMeta(pos.New(2, 4)), base, ir.Symbol("bar"))
	call := ir.New("call", ir.NewMeta(pos.New(2, 4)).With("closing", pos.New(2, 10)), dot)

	got := Of(call)
	want := pos.NewRange(pos.New(2, 1), pos.New(2, 10))
	if got != want {
		t.Errorf("Of = %v, want %v", got, want)
	}

	// chained access recurses to the leftmost operand
	chain := ir.New("call", ir.NewMeta(pos.New(2, 8)),
		ir.New(ir.QualifiedTag, ir.NewMeta(pos.New(2, 8)), call, ir.Symbol("baz")))
	got = Of(chain)
	if got.Start != pos.New(2, 1) {
		t.Errorf("chained start = %v, want 2:1", got.Start)
	}
}

func TestOfIncludeComments(t *testing.T) {
	n := blockTree()
	n = n.WithMeta(n.Meta.WithLeadingComments([]*ir.Comment{
		{Line: 1, Column: 1, Text: "# guard"},
	}))
	n = n.WithMeta(n.Meta.With("line", 2).With("column", 1))

	plain := Of(n)
	if plain.Start != pos.New(2, 1) {
		t.Errorf("default start = %v, want 2:1", plain.Start)
	}
	withComments := Of(n, IncludeComments(true))
	if withComments.Start != pos.New(1, 1) {
		t.Errorf("comment start = %v, want 1:1", withComments.Start)
	}
}

func TestMonotonicity(t *testing.T) {
	trees := []*ir.Node{
		blockTree(),
		ir.New("x", nil),
		ir.New("call", ir.NewMeta(pos.New(3, 9)),
			ir.New("y", ir.NewMeta(pos.New(3, 1)))),
	}
	for i, tree := range trees {
		tree.Visit(func(n *ir.Node, isPost bool) (bool, error) {
			if isPost || n.IsLeaf() {
				return true, nil
			}
			r := Of(n)
			if pos.Compare(&r.End, &r.Start) < 0 {
				t.Errorf("tree %d: end %v before start %v", i, r.End, r.Start)
			}
			return true, nil
		})
	}
}
