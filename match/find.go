package match

import (
	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/zipper"
)

// Find walks the zipper's subtree in depth-first order and returns a
// zipper focused on the first node the matcher accepts, or nil when
// nothing matches.
func Find(z *zipper.Zipper, m *Matcher) (*zipper.Zipper, error) {
	var (
		found   *zipper.Zipper
		walkErr error
	)
	z.TraverseWhile(func(cur *zipper.Zipper) (*zipper.Zipper, zipper.Flow) {
		ok, err := m.Match(cur.Node())
		if err != nil {
			walkErr = err
			return cur, zipper.Halt
		}
		if ok {
			found = cur
			return cur, zipper.Halt
		}
		return cur, zipper.Continue
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return found, nil
}

// FindAll collects every node in the zipper's subtree the matcher
// accepts, in depth-first order.
func FindAll(z *zipper.Zipper, m *Matcher) ([]*ir.Node, error) {
	var (
		res     []*ir.Node
		walkErr error
	)
	z.TraverseWhile(func(cur *zipper.Zipper) (*zipper.Zipper, zipper.Flow) {
		ok, err := m.Match(cur.Node())
		if err != nil {
			walkErr = err
			return cur, zipper.Halt
		}
		if ok {
			res = append(res, cur.Node())
		}
		return cur, zipper.Continue
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return res, nil
}
