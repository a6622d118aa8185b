package zipper

// Flow controls TraverseWhile.
type Flow int

const (
	// Continue visits the focus's children next.
	Continue Flow = iota
	// SkipChildren advances past the focus without visiting its
	// descendants.
	SkipChildren
	// Halt stops the traversal at the focus.
	Halt
)

// Traverse applies f to the focus and every node after it in
// depth-first pre-order, within the focus's subtree only. When the
// zipper is scoped below the top, the rewritten subtree is spliced back
// and the result focuses the same location in the full tree; at the
// top it focuses the new root.
func (z *Zipper) Traverse(f func(*Zipper) *Zipper) *Zipper {
	if z.path == nil {
		return traverseScope(z, f)
	}
	sub := traverseScope(z.Subtree(), f)
	return z.Replace(sub.top().node)
}

// TraverseWhile is Traverse with flow control: f returns the new
// zipper and whether to continue, skip the focus's children, or halt.
// On halt the result stays focused where f halted.
func (z *Zipper) TraverseWhile(f func(*Zipper) (*Zipper, Flow)) *Zipper {
	if z.path == nil {
		return traverseScopeWhile(z, f)
	}
	sub := traverseScopeWhile(z.Subtree(), f)
	return z.Replace(sub.top().node)
}

func traverseScope(z *Zipper, f func(*Zipper) *Zipper) *Zipper {
	cur := z
	for !cur.ended {
		cur = f(cur).Next()
	}
	return &Zipper{node: cur.node, super: cur.super}
}

func traverseScopeWhile(z *Zipper, f func(*Zipper) (*Zipper, Flow)) *Zipper {
	cur := z
	for !cur.ended {
		nz, flow := f(cur)
		switch flow {
		case Halt:
			return nz
		case SkipChildren:
			cur = nz.skipNext()
		default:
			cur = nz.Next()
		}
	}
	return &Zipper{node: cur.node, super: cur.super}
}
