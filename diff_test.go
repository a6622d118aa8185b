package emend

import (
	"strings"
	"testing"
)

func TestDiffEqual(t *testing.T) {
	if d := Diff("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("diff of equal texts = %q", d)
	}
}

func TestDiffLines(t *testing.T) {
	before := "if not allowed? do\n  raise \"Not allowed!\"\nend\n"
	after := "unless allowed? do\n  raise \"Not allowed!\"\nend\n"
	d := Diff(before, after)
	if !strings.Contains(d, "- if not allowed? do\n") {
		t.Errorf("missing removal in:\n%s", d)
	}
	if !strings.Contains(d, "+ unless allowed? do\n") {
		t.Errorf("missing addition in:\n%s", d)
	}
	if !strings.Contains(d, "  end\n") {
		t.Errorf("missing common line in:\n%s", d)
	}
}

func TestFprintDiffPlainWriter(t *testing.T) {
	var b strings.Builder
	FprintDiff(&b, "x\n", "y\n")
	out := b.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color codes written to a non-terminal: %q", out)
	}
	if !strings.Contains(out, "- x\n") || !strings.Contains(out, "+ y\n") {
		t.Errorf("unexpected diff: %q", out)
	}
}
