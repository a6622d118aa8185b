// Package attach places free-floating comments onto the tree nodes
// they visually belong to.
//
// The parser hands over a tree with start positions plus a flat,
// line-ordered comment list. Attachment walks the tree once in source
// order, consuming comments from a cursor: a node claims as leading
// every unclaimed comment at or before its start line, and after its
// children it claims as trailing every comment strictly before its own
// closing line. Whatever survives the walk trails the root. The policy
// is total and deterministic: every comment lands in exactly one
// node's leading or trailing list.
package attach

import (
	"github.com/emend-tools/emend/debug"
	"github.com/emend-tools/emend/ir"
)

// Comments merges comments into the tree rooted at root and returns
// the new root. The input tree and list are not modified. Comments
// must be ordered by ascending line, as the parser produces them.
func Comments(root *ir.Node, comments []*ir.Comment) *ir.Node {
	if root == nil || len(comments) == 0 {
		return root
	}
	cur := &cursor{comments: comments}
	res := attachNode(root.Clone(), cur)
	if rest := cur.rest(); len(rest) != 0 {
		// nothing after these comments; they trail the program root
		res = res.WithMeta(res.Meta.WithTrailingComments(
			append(res.Meta.TrailingComments(), rest...)))
	}
	return res
}

type cursor struct {
	comments []*ir.Comment
	i        int
}

// takeThrough claims comments up to and including line. A comment on
// the same line as a node's start is a leading comment for that node.
func (c *cursor) takeThrough(line int) []*ir.Comment {
	return c.take(func(cm *ir.Comment) bool { return cm.Line <= line })
}

// takeBefore claims comments strictly before line. A comment on the
// closing line itself is not inside the closing node; it trails an
// enclosing node instead.
func (c *cursor) takeBefore(line int) []*ir.Comment {
	return c.take(func(cm *ir.Comment) bool { return cm.Line < line })
}

func (c *cursor) take(in func(*ir.Comment) bool) []*ir.Comment {
	var res []*ir.Comment
	for c.i < len(c.comments) && in(c.comments[c.i]) {
		res = append(res, c.comments[c.i].Clone())
		c.i++
	}
	return res
}

func (c *cursor) rest() []*ir.Comment {
	res := c.take(func(*ir.Comment) bool { return true })
	return res
}

func attachNode(n *ir.Node, cur *cursor) *ir.Node {
	if n == nil || n.IsLeaf() {
		return n
	}
	if start := n.Meta.Start(); start != nil {
		if lead := cur.takeThrough(start.Line); len(lead) != 0 {
			if debug.Attach() {
				debug.Logf("attach %d leading comment(s) to %q at %s\n",
					len(lead), n.Tag, start)
			}
			n.Meta = n.Meta.WithLeadingComments(
				append(n.Meta.LeadingComments(), lead...))
		}
	}
	for i, ch := range n.Children {
		n.Children[i] = attachNode(ch, cur)
	}
	// comments inside this node's span but past every child belong to
	// this node as trailing
	if end := n.Meta.OwnEndLine(); end > 0 {
		if trail := cur.takeBefore(end); len(trail) != 0 {
			if debug.Attach() {
				debug.Logf("attach %d trailing comment(s) to %q\n",
					len(trail), n.Tag)
			}
			n.Meta = n.Meta.WithTrailingComments(
				append(n.Meta.TrailingComments(), trail...))
		}
	}
	return n
}
