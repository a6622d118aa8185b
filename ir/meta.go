package ir

import (
	"reflect"

	"github.com/emend-tools/emend/pos"
)

// Recognized metadata keys. Every other key is opaque and passes
// through all transforms unchanged.
const (
	KeyLine             = "line"
	KeyColumn           = "column"
	KeyLeadingComments  = "leading_comments"
	KeyTrailingComments = "trailing_comments"
)

// EndMarkerKeys are the metadata keys whose values are positions one
// past a closing token. All present markers are span-end candidates;
// the latest one wins.
func EndMarkerKeys() []string {
	return []string{"closing", "do", "end", "end_of_expression"}
}

var endMarkerKeys = map[string]bool{
	"closing":           true,
	"do":                true,
	"end":               true,
	"end_of_expression": true,
}

type metaEntry struct {
	key string
	val any
}

// Meta is an ordered metadata mapping. A nil *Meta is a valid empty
// mapping; With on a nil receiver allocates. Meta values are never
// mutated in place: With and Without copy the entry list.
type Meta struct {
	entries []metaEntry
}

// NewMeta builds metadata holding a start position.
func NewMeta(start pos.Position) *Meta {
	m := &Meta{}
	m.entries = append(m.entries,
		metaEntry{key: KeyLine, val: start.Line},
		metaEntry{key: KeyColumn, val: start.Column},
	)
	return m
}

func (m *Meta) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

func (m *Meta) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i := range m.entries {
		keys[i] = m.entries[i].key
	}
	return keys
}

func (m *Meta) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	for i := range m.entries {
		if m.entries[i].key == key {
			return m.entries[i].val, true
		}
	}
	return nil, false
}

// With returns a copy of m with key set to val. An existing key keeps
// its position in the order; a new key goes last.
func (m *Meta) With(key string, val any) *Meta {
	res := &Meta{}
	if m == nil {
		res.entries = []metaEntry{{key: key, val: val}}
		return res
	}
	res.entries = make([]metaEntry, len(m.entries), len(m.entries)+1)
	copy(res.entries, m.entries)
	for i := range res.entries {
		if res.entries[i].key == key {
			res.entries[i].val = val
			return res
		}
	}
	res.entries = append(res.entries, metaEntry{key: key, val: val})
	return res
}

// Without returns a copy of m with key removed.
func (m *Meta) Without(key string) *Meta {
	if m == nil {
		return nil
	}
	res := &Meta{entries: make([]metaEntry, 0, len(m.entries))}
	for i := range m.entries {
		if m.entries[i].key == key {
			continue
		}
		res.entries = append(res.entries, m.entries[i])
	}
	return res
}

func (m *Meta) Clone() *Meta {
	if m == nil {
		return nil
	}
	res := &Meta{entries: make([]metaEntry, len(m.entries))}
	copy(res.entries, m.entries)
	for i := range res.entries {
		switch v := res.entries[i].val.(type) {
		case []*Comment:
			cs := make([]*Comment, len(v))
			for j, c := range v {
				cs[j] = c.Clone()
			}
			res.entries[i].val = cs
		}
	}
	return res
}

func (m *Meta) Equal(o *Meta) bool {
	if m.Len() != o.Len() {
		return false
	}
	if m == nil || o == nil {
		return true
	}
	for i := range m.entries {
		a, b := &m.entries[i], &o.entries[i]
		if a.key != b.key {
			return false
		}
		if !metaValEqual(a.val, b.val) {
			return false
		}
	}
	return true
}

func metaValEqual(a, b any) bool {
	ac, aok := a.([]*Comment)
	bc, bok := b.([]*Comment)
	if aok || bok {
		if !aok || !bok || len(ac) != len(bc) {
			return false
		}
		for i := range ac {
			if *ac[i] != *bc[i] {
				return false
			}
		}
		return true
	}
	// opaque values may be decoded mappings or lists
	return reflect.DeepEqual(a, b)
}

// Start returns the node's start position, or nil when line/column are
// absent.
func (m *Meta) Start() *pos.Position {
	line, okL := m.intVal(KeyLine)
	col, okC := m.intVal(KeyColumn)
	if !okL && !okC {
		return nil
	}
	return &pos.Position{Line: line, Column: col}
}

// EndMarkers returns every end-marker position present in m, in
// metadata order.
func (m *Meta) EndMarkers() []pos.Position {
	if m == nil {
		return nil
	}
	var res []pos.Position
	for i := range m.entries {
		if !endMarkerKeys[m.entries[i].key] {
			continue
		}
		if p, ok := m.entries[i].val.(pos.Position); ok {
			res = append(res, p)
		}
	}
	return res
}

// OwnEndLine is the latest end-marker line in m itself, 0 when none.
func (m *Meta) OwnEndLine() int {
	res := 0
	for _, p := range m.EndMarkers() {
		if p.Line > res {
			res = p.Line
		}
	}
	return res
}

func (m *Meta) LeadingComments() []*Comment {
	return m.comments(KeyLeadingComments)
}

func (m *Meta) TrailingComments() []*Comment {
	return m.comments(KeyTrailingComments)
}

func (m *Meta) WithLeadingComments(cs []*Comment) *Meta {
	return m.With(KeyLeadingComments, cs)
}

func (m *Meta) WithTrailingComments(cs []*Comment) *Meta {
	return m.With(KeyTrailingComments, cs)
}

func (m *Meta) comments(key string) []*Comment {
	v, ok := m.Get(key)
	if !ok {
		return nil
	}
	cs, _ := v.([]*Comment)
	return cs
}

func (m *Meta) intVal(key string) (int, bool) {
	v, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}
