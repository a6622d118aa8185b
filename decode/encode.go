package decode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/pos"
)

// Encode writes the tree and comment list back out as an interchange
// document, inverse of Decode.
func Encode(root *ir.Node, comments []*ir.Comment, w io.Writer) error {
	doc := yaml.MapSlice{
		{Key: "tree", Value: nodeValue(root)},
	}
	if len(comments) != 0 {
		doc = append(doc, yaml.MapItem{Key: "comments", Value: commentValues(comments)})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInterchange, err)
	}
	_, err = w.Write(data)
	return err
}

func nodeValue(n *ir.Node) any {
	switch n.Kind {
	case ir.StringKind:
		return n.String
	case ir.SymbolKind:
		return yaml.MapSlice{{Key: "symbol", Value: n.String}}
	case ir.BoolKind:
		return n.Bool
	case ir.NumberKind:
		if n.Int64 != nil {
			return *n.Int64
		}
		if n.Float64 != nil {
			return *n.Float64
		}
		return n.Number
	}
	m := yaml.MapSlice{{Key: "tag", Value: n.Tag}}
	if n.Meta.Len() != 0 {
		m = append(m, yaml.MapItem{Key: "meta", Value: metaValue(n.Meta)})
	}
	if len(n.Children) != 0 {
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = nodeValue(c)
		}
		m = append(m, yaml.MapItem{Key: "children", Value: children})
	}
	return m
}

func metaValue(meta *ir.Meta) yaml.MapSlice {
	var res yaml.MapSlice
	for _, k := range meta.Keys() {
		v, _ := meta.Get(k)
		switch x := v.(type) {
		case pos.Position:
			res = append(res, yaml.MapItem{Key: k, Value: yaml.MapSlice{
				{Key: "line", Value: x.Line},
				{Key: "column", Value: x.Column},
			}})
		case []*ir.Comment:
			res = append(res, yaml.MapItem{Key: k, Value: commentValues(x)})
		default:
			res = append(res, yaml.MapItem{Key: k, Value: v})
		}
	}
	return res
}

func commentValues(cs []*ir.Comment) []any {
	res := make([]any, len(cs))
	for i, c := range cs {
		res[i] = yaml.MapSlice{
			{Key: "line", Value: c.Line},
			{Key: "column", Value: c.Column},
			{Key: "previous_eol_count", Value: c.PreviousEOLCount},
			{Key: "next_eol_count", Value: c.NextEOLCount},
			{Key: "text", Value: c.Text},
		}
	}
	return res
}
