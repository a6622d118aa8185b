// Package render is the boundary to the pretty-printer. The core never
// lays out text itself; when a patch's change comes from a rewritten
// subtree, the subtree goes through a Renderer supplied by the host.
package render

import "github.com/emend-tools/emend/ir"

const (
	DefaultLineWidth  = 98
	DefaultIndentUnit = "  "
)

type Config struct {
	LineWidth  int
	IndentUnit string
}

type Option func(*Config)

// LineWidth sets the maximum layout width in characters.
func LineWidth(n int) Option {
	return func(c *Config) { c.LineWidth = n }
}

// IndentUnit sets the string used for one indentation level.
func IndentUnit(s string) Option {
	return func(c *Config) { c.IndentUnit = s }
}

// Build resolves options against the defaults. Renderer
// implementations call this once per Render.
func Build(opts ...Option) *Config {
	cfg := &Config{
		LineWidth:  DefaultLineWidth,
		IndentUnit: DefaultIndentUnit,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Renderer turns a subtree, with its attached comments, back into
// formatted text.
type Renderer interface {
	Render(node *ir.Node, opts ...Option) (string, error)
}

// Func adapts a function to the Renderer interface.
type Func func(node *ir.Node, opts ...Option) (string, error)

func (f Func) Render(node *ir.Node, opts ...Option) (string, error) {
	return f(node, opts...)
}
