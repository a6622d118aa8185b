// Package span resolves the source range a subtree occupies.
//
// The start comes from the node's own line/column metadata, walking
// through the left operand of qualified accesses so that a.b() spans
// from `a`, not from the dot. The end is the latest end-marker position
// found anywhere in the subtree, floored by the start; a node with no
// markers contributes its own start as the candidate.
package span

import (
	"github.com/emend-tools/emend/debug"
	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/pos"
)

type Config struct {
	Default  pos.Position
	Comments bool
}

type Option func(*Config)

// Default sets the position reported when no metadata exists anywhere
// in the subtree. It defaults to 1:1.
func Default(p pos.Position) Option {
	return func(c *Config) { c.Default = p }
}

// IncludeComments extends the start to the node's first leading comment.
func IncludeComments(v bool) Option {
	return func(c *Config) { c.Comments = v }
}

// Of computes the range of the subtree rooted at n. It is total: with
// no position metadata anywhere the result collapses to the default
// position.
func Of(n *ir.Node, opts ...Option) pos.Range {
	cfg := &Config{Default: pos.New(1, 1)}
	for _, opt := range opts {
		opt(cfg)
	}
	start := startOf(n, cfg.Default)
	if cfg.Comments {
		if lead := n.Meta.LeadingComments(); len(lead) != 0 {
			first := lead[0]
			cp := pos.New(first.Line, first.Column)
			if pos.Compare(&cp, &start) < 0 {
				start = cp
			}
		}
	}
	end := endOf(n, start)
	if debug.Span() {
		debug.Logf("span %s for %s node\n", pos.NewRange(start, end), n.Kind)
	}
	return pos.NewRange(start, end)
}

func startOf(n *ir.Node, def pos.Position) pos.Position {
	if n == nil {
		return def
	}
	own := def
	if p := n.Meta.Start(); p != nil {
		own = *p
	}
	// The visible span of a qualified access begins at the left
	// operand, not at the dot token the node's own metadata points at.
	if base := ir.QualifiedBase(n); base != nil {
		return startOf(base, own)
	}
	return own
}

func endOf(n *ir.Node, floor pos.Position) pos.Position {
	end := floor
	n.Visit(func(nd *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if p := nd.Meta.Start(); p != nil {
			end = pos.Max(end, *p)
		}
		for _, marker := range nd.Meta.EndMarkers() {
			end = pos.Max(end, marker)
		}
		return true, nil
	})
	return end
}
