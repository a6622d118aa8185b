package ir

import "strconv"

type Kind uint8

const (
	InvalidKind Kind = iota
	InteriorKind
	StringKind
	SymbolKind
	NumberKind
	BoolKind
)

func (k Kind) String() string {
	switch k {
	case InteriorKind:
		return "interior"
	case StringKind:
		return "string"
	case SymbolKind:
		return "symbol"
	case NumberKind:
		return "number"
	case BoolKind:
		return "bool"
	}
	return "invalid"
}

// QualifiedTag marks a qualified access node: an access or invocation
// whose first child is the expression to the left of the dot.
const QualifiedTag = "."

type Node struct {
	Kind     Kind
	Tag      string
	Meta     *Meta
	Children []*Node

	String  string
	Number  string
	Float64 *float64
	Int64   *int64
	Bool    bool
}

func New(tag string, meta *Meta, children ...*Node) *Node {
	return &Node{
		Kind:     InteriorKind,
		Tag:      tag,
		Meta:     meta,
		Children: children,
	}
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, String: v}
}

func Symbol(name string) *Node {
	return &Node{Kind: SymbolKind, String: name}
}

func FromInt(v int64) *Node {
	return &Node{
		Kind:   NumberKind,
		Number: strconv.FormatInt(v, 10),
		Int64:  &v,
	}
}

func FromFloat(v float64) *Node {
	return &Node{
		Kind:    NumberKind,
		Number:  strconv.FormatFloat(v, 'g', -1, 64),
		Float64: &v,
	}
}

func FromBool(v bool) *Node {
	return &Node{Kind: BoolKind, Bool: v}
}

func (n *Node) IsLeaf() bool {
	return n.Kind != InteriorKind
}

// WithChildren returns a copy of n whose child list is replaced. Tag and
// metadata carry over unchanged.
func (n *Node) WithChildren(children ...*Node) *Node {
	c := *n
	c.Children = children
	return &c
}

// WithMeta returns a copy of n with the given metadata.
func (n *Node) WithMeta(meta *Meta) *Node {
	c := *n
	c.Meta = meta
	return &c
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Meta = n.Meta.Clone()
	if n.Float64 != nil {
		f := *n.Float64
		c.Float64 = &f
	}
	if n.Int64 != nil {
		i := *n.Int64
		c.Int64 = &i
	}
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.Clone()
		}
	}
	return &c
}

// Equal reports deep structural equality, metadata order included.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag {
		return false
	}
	if a.String != b.String || a.Number != b.Number || a.Bool != b.Bool {
		return false
	}
	if !a.Meta.Equal(b.Meta) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Visit walks the subtree in depth-first order, calling f twice per
// node: once before the children (isPost false) and once after. The
// pre-order call's result controls descent.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, ch := range n.Children {
			if err := ch.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// IsQualifiedAccess reports whether n is a qualified access or an
// invocation of one: the node itself carries QualifiedTag, or its first
// child does. For such nodes the visible span begins at the left
// operand, not at the dot.
func IsQualifiedAccess(n *Node) bool {
	if n == nil || n.Kind != InteriorKind || len(n.Children) == 0 {
		return false
	}
	if n.Tag == QualifiedTag {
		return true
	}
	first := n.Children[0]
	return first.Kind == InteriorKind && first.Tag == QualifiedTag
}

// QualifiedBase returns the expression to the left of the dot, or nil
// when n is not a qualified access.
func QualifiedBase(n *Node) *Node {
	if !IsQualifiedAccess(n) {
		return nil
	}
	if n.Tag == QualifiedTag {
		return n.Children[0]
	}
	first := n.Children[0]
	if len(first.Children) == 0 {
		return nil
	}
	return first.Children[0]
}

// IsEndMarkable reports whether n's own metadata carries at least one
// end-marker position.
func IsEndMarkable(n *Node) bool {
	return n != nil && len(n.Meta.EndMarkers()) > 0
}
