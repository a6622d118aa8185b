// Package zipper provides a persistent cursor over ir trees.
//
// A Zipper focuses one node and remembers how to rebuild the rest of
// the tree: an explicit stack of frames, each holding the focused
// node's siblings and the parent node's own data. Local moves and edits
// are O(1); nothing is mutated, so any number of zippers can share a
// tree and edit it independently.
//
// Moves that run out of tree return nil rather than an error; callers
// branch on the result. Edits that make no sense at the top (Remove,
// InsertLeft, InsertRight) return an error, since they indicate a
// caller bug rather than a data condition.
package zipper

import (
	"errors"

	"github.com/emend-tools/emend/ir"
)

var (
	// ErrAtTop is reported when an edit needs a parent and the focus
	// is the top of its scope.
	ErrAtTop = errors.New("zipper: operation requires a parent")
)

// frame records one opened level: the parent node whose child list the
// focus came from, and the siblings on either side. left is reversed so
// pushes and pops stay O(1).
type frame struct {
	parent *ir.Node
	left   []*ir.Node
	right  []*ir.Node
	up     *frame
}

type Zipper struct {
	node  *ir.Node
	path  *frame
	super *Zipper // set by Subtree; links back to the enclosing tree
	ended bool
}

// New returns a zipper focused on root.
func New(root *ir.Node) *Zipper {
	return &Zipper{node: root}
}

// Node is the currently focused node.
func (z *Zipper) Node() *ir.Node {
	return z.node
}

// IsEnd reports whether a depth-first traversal has passed the last
// node. Next on an ended zipper is a no-op.
func (z *Zipper) IsEnd() bool {
	return z.ended
}

// Down focuses the first child, or returns nil when the focus is a
// leaf or has no children.
func (z *Zipper) Down() *Zipper {
	n := z.node
	if n.IsLeaf() || len(n.Children) == 0 {
		return nil
	}
	return &Zipper{
		node: n.Children[0],
		path: &frame{
			parent: n,
			right:  n.Children[1:],
			up:     z.path,
		},
		super: z.super,
	}
}

// Up rebuilds the parent from the focus and its siblings and focuses
// it. Returns nil at the top of the current scope.
func (z *Zipper) Up() *Zipper {
	f := z.path
	if f == nil {
		return nil
	}
	children := make([]*ir.Node, 0, len(f.left)+1+len(f.right))
	for i := len(f.left) - 1; i >= 0; i-- {
		children = append(children, f.left[i])
	}
	children = append(children, z.node)
	children = append(children, f.right...)
	return &Zipper{
		node:  f.parent.WithChildren(children...),
		path:  f.up,
		super: z.super,
	}
}

// Left focuses the previous sibling, or returns nil at the left end or
// the top.
func (z *Zipper) Left() *Zipper {
	f := z.path
	if f == nil || len(f.left) == 0 {
		return nil
	}
	right := make([]*ir.Node, 0, len(f.right)+1)
	right = append(right, z.node)
	right = append(right, f.right...)
	return &Zipper{
		node: f.left[0],
		path: &frame{
			parent: f.parent,
			left:   f.left[1:],
			right:  right,
			up:     f.up,
		},
		super: z.super,
	}
}

// Right focuses the next sibling, or returns nil at the right end or
// the top.
func (z *Zipper) Right() *Zipper {
	f := z.path
	if f == nil || len(f.right) == 0 {
		return nil
	}
	left := make([]*ir.Node, 0, len(f.left)+1)
	left = append(left, z.node)
	left = append(left, f.left...)
	return &Zipper{
		node: f.right[0],
		path: &frame{
			parent: f.parent,
			left:   left,
			right:  f.right[1:],
			up:     f.up,
		},
		super: z.super,
	}
}

// Next is one depth-first pre-order step: down, else right, else up
// until a right exists. Past the last node it returns an ended zipper
// focused on the scope's top; further calls return the same state.
func (z *Zipper) Next() *Zipper {
	if z.ended {
		return z
	}
	if d := z.Down(); d != nil {
		return d
	}
	return z.skipNext()
}

// skipNext advances without descending: the next step for a node whose
// children are pruned.
func (z *Zipper) skipNext() *Zipper {
	if r := z.Right(); r != nil {
		return r
	}
	t := z
	for {
		u := t.Up()
		if u == nil {
			return &Zipper{node: t.node, super: t.super, ended: true}
		}
		t = u
		if r := t.Right(); r != nil {
			return r
		}
	}
}

// Prev is the inverse of Next: the previous node in depth-first
// pre-order, or nil before the first node. On an ended zipper it
// focuses the last node of the traversal.
func (z *Zipper) Prev() *Zipper {
	if z.ended {
		return (&Zipper{node: z.node, super: z.super}).downmost()
	}
	l := z.Left()
	if l == nil {
		return z.Up()
	}
	return l.downmost()
}

// downmost drills to the rightmost descendant of the focus.
func (z *Zipper) downmost() *Zipper {
	t := z
	for {
		d := t.Down()
		if d == nil {
			return t
		}
		for r := d.Right(); r != nil; r = d.Right() {
			d = r
		}
		t = d
	}
}

// Subtree re-roots the zipper at the focus. The rest of the tree
// remains reachable only through Topmost, which splices edits back.
func (z *Zipper) Subtree() *Zipper {
	return &Zipper{node: z.node, super: z}
}

// Topmost escapes all Subtree scoping and returns a zipper at the top
// of the full tree, with any edits spliced in. It is total: outside
// any scope it simply climbs to the root, so escaping never fails.
func (z *Zipper) Topmost() *Zipper {
	t := z
	for {
		for u := t.Up(); u != nil; u = t.Up() {
			t = u
		}
		if t.super == nil {
			return &Zipper{node: t.node}
		}
		t = t.super.Replace(t.node)
	}
}

// TopmostRoot is the root node of the full tree.
func (z *Zipper) TopmostRoot() *ir.Node {
	return z.Topmost().Node()
}

// top climbs to the top of the current scope without escaping Subtree.
func (z *Zipper) top() *Zipper {
	t := z
	for u := t.Up(); u != nil; u = t.Up() {
		t = u
	}
	return t
}
