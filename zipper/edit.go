package zipper

import "github.com/emend-tools/emend/ir"

// Replace substitutes the focus, keeping the path unchanged.
func (z *Zipper) Replace(n *ir.Node) *Zipper {
	return &Zipper{node: n, path: z.path, super: z.super}
}

// Edit replaces the focus with f applied to it.
func (z *Zipper) Edit(f func(*ir.Node) *ir.Node) *Zipper {
	return z.Replace(f(z.node))
}

// InsertLeft adds a sibling before the focus without moving it.
func (z *Zipper) InsertLeft(n *ir.Node) (*Zipper, error) {
	f := z.path
	if f == nil {
		return nil, ErrAtTop
	}
	left := make([]*ir.Node, 0, len(f.left)+1)
	left = append(left, n)
	left = append(left, f.left...)
	return &Zipper{
		node: z.node,
		path: &frame{
			parent: f.parent,
			left:   left,
			right:  f.right,
			up:     f.up,
		},
		super: z.super,
	}, nil
}

// InsertRight adds a sibling after the focus without moving it.
func (z *Zipper) InsertRight(n *ir.Node) (*Zipper, error) {
	f := z.path
	if f == nil {
		return nil, ErrAtTop
	}
	right := make([]*ir.Node, 0, len(f.right)+1)
	right = append(right, n)
	right = append(right, f.right...)
	return &Zipper{
		node: z.node,
		path: &frame{
			parent: f.parent,
			left:   f.left,
			right:  right,
			up:     f.up,
		},
		super: z.super,
	}, nil
}

// Remove deletes the focus. The new focus is the previous node in
// depth-first order; with no left siblings it is the parent with the
// child gone. Removing the top of a scope is a caller bug.
func (z *Zipper) Remove() (*Zipper, error) {
	f := z.path
	if f == nil {
		return nil, ErrAtTop
	}
	if len(f.left) == 0 {
		return &Zipper{
			node:  f.parent.WithChildren(f.right...),
			path:  f.up,
			super: z.super,
		}, nil
	}
	prev := &Zipper{
		node: f.left[0],
		path: &frame{
			parent: f.parent,
			left:   f.left[1:],
			right:  f.right,
			up:     f.up,
		},
		super: z.super,
	}
	return prev.downmost(), nil
}
