// Package patch applies range-targeted text replacements to source
// text.
//
// Patches are applied bottom-up: sorted by start line descending so a
// splice never invalidates the line numbers of the patches still to
// come, and right-to-left within a line so column offsets stay valid.
// Ranges use 1-based lines and columns, with the end column exclusive.
//
// Overlapping or conflicting ranges are not detected; the output is
// deterministic but order-dependent and the caller's responsibility.
package patch

import (
	"sort"
	"strings"

	"github.com/emend-tools/emend/debug"
	"github.com/emend-tools/emend/pos"
)

// Patch replaces the text inside Range. Change is the replacement
// text; when Transform is non-nil it receives the exact original text
// of the range and its result is used instead of Change.
//
// Multi-line literal replacements have their non-first lines
// re-indented to the depth surrounding the patch start unless
// SkipIndentation is set. Transform results are never re-indented.
type Patch struct {
	Range           pos.Range
	Change          string
	Transform       func(string) string
	SkipIndentation bool
}

// New builds a literal-text patch.
func New(r pos.Range, change string) Patch {
	return Patch{Range: r, Change: change}
}

// Apply applies all patches to source and returns the edited text.
// With no patches the source comes back unchanged, byte for byte.
func Apply(source string, patches []Patch) string {
	if len(patches) == 0 {
		return source
	}
	ordered := make([]Patch, len(patches))
	copy(ordered, patches)
	// bottom-up, right-to-left
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Range.Start, ordered[j].Range.Start
		if a.Line != b.Line {
			return a.Line > b.Line
		}
		return a.Column > b.Column
	})

	lines := strings.Split(source, "\n")
	for i := range ordered {
		p := &ordered[i]
		if debug.Patch() {
			debug.Logf("patch %s\n", p.Range)
		}
		if p.Range.SingleLine() {
			lines = applySingleLine(lines, p)
		} else {
			lines = applyMultiLine(lines, p)
		}
	}
	return strings.Join(lines, "\n")
}

// applySingleLine splices one line at 1-based, end-exclusive columns.
func applySingleLine(lines []string, p *Patch) []string {
	ln := p.Range.Start.Line - 1
	if ln < 0 || ln >= len(lines) {
		return lines
	}
	line := lines[ln]
	startCol := p.Range.Start.Column - 1
	endCol := p.Range.End.Column - 1
	original := slice(line, startCol, endCol)
	lines[ln] = slice(line, 0, startCol) + p.change(original) + sliceFrom(line, endCol)
	return lines
}

func applyMultiLine(lines []string, p *Patch) []string {
	start, end := p.Range.Start, p.Range.End
	first := start.Line - 1
	last := end.Line - 1
	if first < 0 || last >= len(lines) || last < first {
		return lines
	}
	prefix := slice(lines[first], 0, start.Column-1)
	suffix := sliceFrom(lines[last], end.Column-1)

	var original string
	if p.Transform != nil {
		// assembled only when the transform needs it
		span := make([]string, 0, last-first+1)
		span = append(span, sliceFrom(lines[first], start.Column-1))
		span = append(span, lines[first+1:last]...)
		span = append(span, slice(lines[last], 0, end.Column-1))
		original = strings.Join(span, "\n")
	}

	replacement := p.change(original)
	replLines := strings.Split(replacement, "\n")
	if p.Transform == nil && !p.SkipIndentation {
		replLines = reindent(replLines, prefix)
	}

	spliced := make([]string, 0, len(lines)-(last-first+1)+len(replLines))
	spliced = append(spliced, lines[:first]...)
	head := prefix + replLines[0]
	if len(replLines) == 1 {
		spliced = append(spliced, head+suffix)
	} else {
		spliced = append(spliced, head)
		spliced = append(spliced, replLines[1:len(replLines)-1]...)
		spliced = append(spliced, replLines[len(replLines)-1]+suffix)
	}
	spliced = append(spliced, lines[last+1:]...)
	return spliced
}

func (p *Patch) change(original string) string {
	if p.Transform != nil {
		return p.Transform(original)
	}
	return p.Change
}

// slice cuts line at 0-based [from, to), clamping out-of-range bounds.
func slice(line string, from, to int) string {
	from = clamp(from, len(line))
	to = clamp(to, len(line))
	if to < from {
		to = from
	}
	return line[from:to]
}

func sliceFrom(line string, from int) string {
	return line[clamp(from, len(line)):]
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
