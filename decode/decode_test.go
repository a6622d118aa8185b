package decode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/emend-tools/emend/ir"
	"github.com/emend-tools/emend/pos"

	"github.com/google/go-cmp/cmp"
)

const sampleDoc = `
tree:
  tag: def
  meta:
    line: 2
    column: 1
    do: {line: 2, column: 12}
    end: {line: 5, column: 4}
    format: keyword
    annotations: {source: macro, depth: 2}
  children:
    - tag: foo
      meta: {line: 2, column: 5}
    - tag: block
      meta: {line: 3, column: 3}
      children:
        - symbol: ok
        - "a string"
        - 42
        - true
comments:
  - line: 1
    column: 1
    previous_eol_count: 1
    next_eol_count: 1
    text: "# about foo"
`

func TestDecode(t *testing.T) {
	root, comments, err := Decode([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	if root.Tag != "def" || root.Kind != ir.InteriorKind {
		t.Fatalf("root = %v %q", root.Kind, root.Tag)
	}
	start := root.Meta.Start()
	if start == nil || *start != pos.New(2, 1) {
		t.Errorf("start = %v", start)
	}
	markers := root.Meta.EndMarkers()
	if len(markers) != 2 || markers[1] != pos.New(5, 4) {
		t.Errorf("end markers = %v", markers)
	}
	// opaque metadata survives with its position in the order
	keys := root.Meta.Keys()
	if keys[len(keys)-2] != "format" || keys[len(keys)-1] != "annotations" {
		t.Errorf("meta keys = %v", keys)
	}
	if v, _ := root.Meta.Get("format"); v != "keyword" {
		t.Errorf("format = %v", v)
	}

	block := root.Children[1]
	if len(block.Children) != 4 {
		t.Fatalf("block children = %d", len(block.Children))
	}
	if block.Children[0].Kind != ir.SymbolKind || block.Children[0].String != "ok" {
		t.Errorf("symbol leaf = %v", block.Children[0])
	}
	if block.Children[1].Kind != ir.StringKind {
		t.Errorf("string leaf = %v", block.Children[1])
	}
	if block.Children[2].Kind != ir.NumberKind || *block.Children[2].Int64 != 42 {
		t.Errorf("number leaf = %v", block.Children[2])
	}
	if block.Children[3].Kind != ir.BoolKind || !block.Children[3].Bool {
		t.Errorf("bool leaf = %v", block.Children[3])
	}

	if len(comments) != 1 || comments[0].Text != "# about foo" {
		t.Fatalf("comments = %v", comments)
	}
	if comments[0].Line != 1 || comments[0].NextEOLCount != 1 {
		t.Errorf("comment fields = %+v", comments[0])
	}
}

func TestRoundTrip(t *testing.T) {
	root, comments, err := Decode([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(root, comments, &buf); err != nil {
		t.Fatal(err)
	}
	root2, comments2, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("re-decoding encoded document: %v\n%s", err, buf.String())
	}
	if !ir.Equal(root, root2) {
		t.Error("tree changed across round trip")
	}
	if d := cmp.Diff(comments, comments2); d != "" {
		t.Errorf("comments changed across round trip (-first +second):\n%s", d)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not a mapping", doc: `- 1`},
		{name: "no tree", doc: `comments: []`},
		{name: "interior without tag", doc: "tree:\n  children: []"},
		{name: "unknown node key", doc: "tree:\n  tag: x\n  weird: 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode([]byte(tt.doc))
			if !errors.Is(err, ErrInterchange) {
				t.Errorf("err = %v, want ErrInterchange", err)
			}
		})
	}
}
