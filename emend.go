package emend

import (
	"github.com/emend-tools/emend/attach"
	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/patch"
	"github.com/emend-tools/emend/pos"
	"github.com/emend-tools/emend/render"
	"github.com/emend-tools/emend/span"
)

// Attach merges a parser's flat comment list into the tree. Run it
// exactly once per parse, before any editing.
func Attach(root *ir.Node, comments []*ir.Comment) *ir.Node {
	return attach.Comments(root, comments)
}

// SpanOf resolves the source range a subtree occupies.
func SpanOf(n *ir.Node, opts ...span.Option) pos.Range {
	return span.Of(n, opts...)
}

// Apply applies patches to source text.
func Apply(source string, patches []patch.Patch) string {
	return patch.Apply(source, patches)
}

// PatchNode renders a rewritten subtree through r and wraps the result
// in a patch targeting rng. The renderer lays the text out at depth
// zero; the patch engine re-indents it to the surrounding depth.
func PatchNode(r render.Renderer, n *ir.Node, rng pos.Range, opts ...render.Option) (patch.Patch, error) {
	text, err := r.Render(n, opts...)
	if err != nil {
		return patch.Patch{}, err
	}
	return patch.New(rng, text), nil
}
