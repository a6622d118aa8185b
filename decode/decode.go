// Package decode reads and writes the parser interchange document.
//
// The lexer and grammar parser live outside this module; they deliver
// their result as a YAML (or JSON) document holding the tree and the
// flat comment list. Decode is the pure (bytes) -> (tree, comments)
// boundary: no ambient state, one call per parse.
//
// Interior nodes are mappings with "tag", "meta" and "children" keys.
// Leaves are scalars; symbols are spelled as a single-key mapping
// {symbol: name}. Metadata keys keep their document order, recognized
// or not.
package decode

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/pos"
)

var ErrInterchange = errors.New("interchange document error")

// Decode parses an interchange document into the tree and its comment
// list.
func Decode(data []byte) (*ir.Node, []*ir.Comment, error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInterchange, err)
	}
	m, ok := doc.(yaml.MapSlice)
	if !ok {
		return nil, nil, fmt.Errorf("%w: document is not a mapping", ErrInterchange)
	}
	var (
		root     *ir.Node
		comments []*ir.Comment
		err      error
	)
	for _, item := range m {
		switch key(item) {
		case "tree":
			root, err = buildNode(item.Value)
			if err != nil {
				return nil, nil, err
			}
		case "comments":
			comments, err = buildComments(item.Value)
			if err != nil {
				return nil, nil, err
			}
		}
	}
	if root == nil {
		return nil, nil, fmt.Errorf("%w: no tree", ErrInterchange)
	}
	return root, comments, nil
}

func key(item yaml.MapItem) string {
	s, _ := item.Key.(string)
	return s
}

func buildNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case yaml.MapSlice:
		return buildMapping(x)
	case nil:
		return nil, fmt.Errorf("%w: null node", ErrInterchange)
	}
	return nil, fmt.Errorf("%w: unsupported node value %T", ErrInterchange, v)
}

func buildMapping(m yaml.MapSlice) (*ir.Node, error) {
	if len(m) == 1 && key(m[0]) == "symbol" {
		name, ok := m[0].Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: symbol name is %T", ErrInterchange, m[0].Value)
		}
		return ir.Symbol(name), nil
	}
	node := &ir.Node{Kind: ir.InteriorKind}
	sawTag := false
	for _, item := range m {
		switch key(item) {
		case "tag":
			tag, ok := item.Value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: tag is %T", ErrInterchange, item.Value)
			}
			node.Tag = tag
			sawTag = true
		case "meta":
			meta, err := buildMeta(item.Value)
			if err != nil {
				return nil, err
			}
			node.Meta = meta
		case "children":
			children, err := buildChildren(item.Value)
			if err != nil {
				return nil, err
			}
			node.Children = children
		default:
			return nil, fmt.Errorf("%w: unknown node key %q", ErrInterchange, key(item))
		}
	}
	if !sawTag {
		return nil, fmt.Errorf("%w: interior node without tag", ErrInterchange)
	}
	return node, nil
}

func buildChildren(v any) ([]*ir.Node, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: children is %T", ErrInterchange, v)
	}
	res := make([]*ir.Node, len(list))
	for i, c := range list {
		n, err := buildNode(c)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

func buildMeta(v any) (*ir.Meta, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := v.(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: meta is %T", ErrInterchange, v)
	}
	var meta *ir.Meta
	for _, item := range m {
		k := key(item)
		switch {
		case k == ir.KeyLine || k == ir.KeyColumn:
			i, err := toInt(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: meta %s: %w", ErrInterchange, k, err)
			}
			meta = meta.With(k, i)
		case isEndMarker(k):
			p, err := toPosition(item.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: meta %s: %w", ErrInterchange, k, err)
			}
			meta = meta.With(k, p)
		case k == ir.KeyLeadingComments || k == ir.KeyTrailingComments:
			cs, err := buildComments(item.Value)
			if err != nil {
				return nil, err
			}
			meta = meta.With(k, cs)
		default:
			// opaque, pass through as decoded
			meta = meta.With(k, item.Value)
		}
	}
	return meta, nil
}

func isEndMarker(k string) bool {
	for _, mk := range ir.EndMarkerKeys() {
		if k == mk {
			return true
		}
	}
	return false
}

func toPosition(v any) (pos.Position, error) {
	m, ok := v.(yaml.MapSlice)
	if !ok {
		return pos.Position{}, fmt.Errorf("position is %T", v)
	}
	var p pos.Position
	for _, item := range m {
		i, err := toInt(item.Value)
		if err != nil {
			return pos.Position{}, err
		}
		switch key(item) {
		case "line":
			p.Line = i
		case "column":
			p.Column = i
		}
	}
	return p, nil
}

func buildComments(v any) ([]*ir.Comment, error) {
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: comments is %T", ErrInterchange, v)
	}
	res := make([]*ir.Comment, len(list))
	for i, cv := range list {
		m, ok := cv.(yaml.MapSlice)
		if !ok {
			return nil, fmt.Errorf("%w: comment is %T", ErrInterchange, cv)
		}
		c := &ir.Comment{}
		for _, item := range m {
			switch key(item) {
			case "text":
				s, ok := item.Value.(string)
				if !ok {
					return nil, fmt.Errorf("%w: comment text is %T", ErrInterchange, item.Value)
				}
				c.Text = s
			case "line", "column", "previous_eol_count", "next_eol_count":
				n, err := toInt(item.Value)
				if err != nil {
					return nil, fmt.Errorf("%w: comment %s: %w", ErrInterchange, key(item), err)
				}
				switch key(item) {
				case "line":
					c.Line = n
				case "column":
					c.Column = n
				case "previous_eol_count":
					c.PreviousEOLCount = n
				case "next_eol_count":
					c.NextEOLCount = n
				}
			}
		}
		res[i] = c
	}
	return res, nil
}

func toInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case uint64:
		return int(x), nil
	case float64:
		return int(x), nil
	}
	return 0, fmt.Errorf("not an integer: %T", v)
}
