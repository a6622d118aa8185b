package attach

import (
	"testing"

	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/pos"
)

// source shape used by most cases:
//
//	# about foo
//	def foo do
//	  :ok
//	  # closing note
//	end
func defTree() *ir.Node {
	return ir.New("def",
		ir.NewMeta(pos.New(2, 1)).
			With("do", pos.New(2, 12)).
			With("end", pos.New(5, 4)),
		ir.New("foo", ir.NewMeta(pos.New(2, 5))),
		ir.New("block", ir.NewMeta(pos.New(3, 3)),
			ir.Symbol("ok")),
	)
}

func countComments(n *ir.Node) int {
	total := 0
	n.Visit(func(nd *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		total += len(nd.Meta.LeadingComments()) + len(nd.Meta.TrailingComments())
		return true, nil
	})
	return total
}

func TestLeadingAndTrailing(t *testing.T) {
	comments := []*ir.Comment{
		{Line: 1, Column: 1, Text: "# about foo", NextEOLCount: 1},
		{Line: 4, Column: 3, Text: "# closing note", PreviousEOLCount: 1},
	}
	got := Comments(defTree(), comments)

	lead := got.Meta.LeadingComments()
	if len(lead) != 1 || lead[0].Text != "# about foo" {
		t.Fatalf("leading = %v", lead)
	}
	trail := got.Meta.TrailingComments()
	if len(trail) != 1 || trail[0].Text != "# closing note" {
		t.Fatalf("trailing = %v", trail)
	}
	if countComments(got) != 2 {
		t.Errorf("comment count = %d, want 2", countComments(got))
	}
}

func TestSameLineTieIsLeading(t *testing.T) {
	// a comment on the node's own start line leads that node
	comments := []*ir.Comment{
		{Line: 2, Column: 20, Text: "# same line", NextEOLCount: 0},
	}
	got := Comments(defTree(), comments)
	lead := got.Meta.LeadingComments()
	if len(lead) != 1 || lead[0].Text != "# same line" {
		t.Fatalf("leading = %v", lead)
	}
}

func TestCommentBeforeChildLeadsChild(t *testing.T) {
	//	def foo do
	//	  # before ok
	//	  :ok
	//	end
	tree := ir.New("def",
		ir.NewMeta(pos.New(1, 1)).With("end", pos.New(4, 4)),
		ir.New("foo", ir.NewMeta(pos.New(1, 5))),
		ir.New("block", ir.NewMeta(pos.New(3, 3)), ir.Symbol("ok")),
	)
	comments := []*ir.Comment{
		{Line: 2, Column: 3, Text: "# before ok"},
	}
	got := Comments(tree, comments)
	block := got.Children[1]
	lead := block.Meta.LeadingComments()
	if len(lead) != 1 || lead[0].Text != "# before ok" {
		t.Fatalf("block leading = %v", lead)
	}
	if len(got.Meta.LeadingComments()) != 0 || len(got.Meta.TrailingComments()) != 0 {
		t.Error("parent wrongly claimed the comment")
	}
}

func TestCommentOnClosingLineTrailsEnclosing(t *testing.T) {
	// a comment on an inner node's closing line belongs to the outer
	// node, not the inner one
	//
	//	defmodule M do
	//	  def foo do
	//	    :ok
	//	  end # done
	//	end
	inner := ir.New("def",
		ir.NewMeta(pos.New(2, 3)).With("end", pos.New(4, 6)),
		ir.New("block", ir.NewMeta(pos.New(3, 5)), ir.Symbol("ok")),
	)
	outer := ir.New("defmodule",
		ir.NewMeta(pos.New(1, 1)).With("end", pos.New(5, 4)),
		inner,
	)
	comments := []*ir.Comment{
		{Line: 4, Column: 7, Text: "# done", NextEOLCount: 1},
	}
	got := Comments(outer, comments)
	if n := len(got.Children[0].Meta.TrailingComments()); n != 0 {
		t.Errorf("inner node claimed %d trailing comment(s)", n)
	}
	trail := got.Meta.TrailingComments()
	if len(trail) != 1 || trail[0].Text != "# done" {
		t.Fatalf("outer trailing = %v", trail)
	}
}

func TestOrphansTrailRoot(t *testing.T) {
	comments := []*ir.Comment{
		{Line: 9, Column: 1, Text: "# end of file"},
		{Line: 10, Column: 1, Text: "# really the end"},
	}
	got := Comments(defTree(), comments)
	trail := got.Meta.TrailingComments()
	if len(trail) != 2 {
		t.Fatalf("root trailing = %v", trail)
	}
	if trail[0].Text != "# end of file" || trail[1].Text != "# really the end" {
		t.Errorf("orphans out of order: %v", trail)
	}
}

func TestConservation(t *testing.T) {
	comments := []*ir.Comment{
		{Line: 1, Column: 1, Text: "# a"},
		{Line: 2, Column: 14, Text: "# b"},
		{Line: 3, Column: 9, Text: "# c"},
		{Line: 4, Column: 3, Text: "# d"},
		{Line: 7, Column: 1, Text: "# e"},
	}
	got := Comments(defTree(), comments)
	if n := countComments(got); n != len(comments) {
		t.Errorf("attached %d comments, want %d", n, len(comments))
	}
}

func TestInputUntouched(t *testing.T) {
	tree := defTree()
	comments := []*ir.Comment{
		{Line: 1, Column: 1, Text: "# about foo"},
	}
	Comments(tree, comments)
	if countComments(tree) != 0 {
		t.Error("input tree gained comments")
	}
}

func TestNoComments(t *testing.T) {
	tree := defTree()
	got := Comments(tree, nil)
	if !ir.Equal(got, tree) {
		t.Error("attachment without comments changed the tree")
	}
}
