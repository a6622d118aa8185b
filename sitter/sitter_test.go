package sitter

import (
	"testing"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"

	"github.com/emend-tools/emend/attach"
	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/span"
)

func goLang() *tree_sitter.Language {
	return tree_sitter.NewLanguage(unsafe.Pointer(tree_sitter_go.Language()))
}

const goSource = `package main

// about main
func main() {
	println("hi")
}
`

func TestParse(t *testing.T) {
	root, comments, err := Parse([]byte(goSource), goLang())
	if err != nil {
		t.Fatal(err)
	}
	if root.Tag != "source_file" {
		t.Errorf("root tag = %q", root.Tag)
	}
	start := root.Meta.Start()
	if start == nil || start.Line != 1 || start.Column != 1 {
		t.Errorf("root start = %v", start)
	}
	if len(comments) != 1 || comments[0].Text != "// about main" {
		t.Fatalf("comments = %v", comments)
	}
	if comments[0].Line != 3 || comments[0].PreviousEOLCount != 2 {
		t.Errorf("comment fields = %+v", comments[0])
	}

	// comment nodes must not appear in the tree
	root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if !isPost && n.Tag == "comment" {
			t.Error("comment left in the tree")
		}
		return true, nil
	})
}

func TestParseSpans(t *testing.T) {
	root, _, err := Parse([]byte(goSource), goLang())
	if err != nil {
		t.Fatal(err)
	}
	var fn *ir.Node
	root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if !isPost && n.Tag == "function_declaration" {
			fn = n
		}
		return true, nil
	})
	if fn == nil {
		t.Fatal("no function_declaration node")
	}
	r := span.Of(fn)
	if r.Start.Line != 4 || r.End.Line != 6 {
		t.Errorf("function span = %v", r)
	}
}

func TestParseThenAttach(t *testing.T) {
	root, comments, err := Parse([]byte(goSource), goLang())
	if err != nil {
		t.Fatal(err)
	}
	attached := attach.Comments(root, comments)
	total := 0
	attached.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		total += len(n.Meta.LeadingComments()) + len(n.Meta.TrailingComments())
		return true, nil
	})
	if total != len(comments) {
		t.Errorf("attached %d comments, want %d", total, len(comments))
	}
}
