// Package emend rewrites source code while preserving everything an
// edit did not touch: whitespace, comment placement and formatting
// outside the modified region.
//
// The usual flow: an external parser delivers a tree plus a flat
// comment list (package decode reads its interchange document, package
// sitter adapts tree-sitter parses directly). Attach runs once to give
// every comment a home on the tree. The tree is then navigated and
// edited with package zipper, nodes are selected with package match,
// and the edits become textual patches: either literal replacements or
// rewritten subtrees run through the host's renderer. Apply reconciles
// the patches against the original text.
//
//	root = emend.Attach(root, comments)
//	z, _ := match.Find(zipper.New(root), m)
//	p, _ := emend.PatchNode(renderer, z.Node(), emend.SpanOf(z.Node()))
//	out := emend.Apply(source, []patch.Patch{p})
package emend
