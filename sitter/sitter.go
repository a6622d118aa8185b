// Package sitter adapts tree-sitter parses to the ir tree model.
//
// tree-sitter is one concrete stand-in for the external parser this
// module otherwise receives interchange documents from: given a
// grammar, Parse produces an ir tree whose nodes carry 1-based start
// positions and a "closing" end marker, plus the flat comment list the
// attachment pass consumes. Grammar kinds become tags; childless named
// nodes keep their source text as a single leaf child, since leaves
// carry no metadata of their own.
package sitter

import (
	"errors"
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/emend-tools/emend/debug"
	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/pos"
)

var ErrParse = errors.New("tree-sitter parse error")

// Parse parses source with the given grammar and converts the result.
func Parse(source []byte, lang *tree_sitter.Language) (*ir.Node, []*ir.Comment, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, nil, fmt.Errorf("%w: no tree", ErrParse)
	}
	defer tree.Close()
	root, comments := Convert(tree.RootNode(), source)
	return root, comments, nil
}

// Convert translates a tree-sitter subtree into an ir tree and the
// comments found inside it, ordered by line.
func Convert(root *tree_sitter.Node, source []byte) (*ir.Node, []*ir.Comment) {
	c := &converter{source: source}
	return c.node(root), c.comments
}

type converter struct {
	source   []byte
	comments []*ir.Comment
}

func (c *converter) node(n *tree_sitter.Node) *ir.Node {
	meta := ir.NewMeta(toPos(n.StartPosition())).
		With("closing", toPos(n.EndPosition()))
	count := n.NamedChildCount()
	if count == 0 {
		return ir.New(n.Kind(), meta, ir.FromString(n.Utf8Text(c.source)))
	}
	children := make([]*ir.Node, 0, count)
	for i := uint(0); i < count; i++ {
		ch := n.NamedChild(i)
		if isComment(ch) {
			c.comment(ch)
			continue
		}
		children = append(children, c.node(ch))
	}
	return ir.New(n.Kind(), meta, children...)
}

func (c *converter) comment(n *tree_sitter.Node) {
	start := n.StartPosition()
	cm := &ir.Comment{
		Line:             int(start.Row) + 1,
		Column:           int(start.Column) + 1,
		PreviousEOLCount: eolsBefore(c.source, int(n.StartByte())),
		NextEOLCount:     eolsAfter(c.source, int(n.EndByte())),
		Text:             n.Utf8Text(c.source),
	}
	if debug.Sitter() {
		debug.Logf("comment %d:%d %q\n", cm.Line, cm.Column, cm.Text)
	}
	c.comments = append(c.comments, cm)
}

func isComment(n *tree_sitter.Node) bool {
	return n.IsExtra() && strings.Contains(n.Kind(), "comment")
}

// toPos converts a 0-based tree-sitter point to a 1-based position.
// End points are exclusive on both sides, matching end-marker
// semantics.
func toPos(p tree_sitter.Point) pos.Position {
	return pos.New(int(p.Row)+1, int(p.Column)+1)
}

// eolsBefore counts newlines between the previous non-blank byte and
// offset.
func eolsBefore(source []byte, offset int) int {
	n := 0
	for i := offset - 1; i >= 0; i-- {
		switch source[i] {
		case '\n':
			n++
		case ' ', '\t', '\r':
		default:
			return n
		}
	}
	return n
}

// eolsAfter counts newlines between offset and the next non-blank
// byte.
func eolsAfter(source []byte, offset int) int {
	n := 0
	for i := offset; i < len(source); i++ {
		switch source[i] {
		case '\n':
			n++
		case ' ', '\t', '\r':
		default:
			return n
		}
	}
	return n
}
