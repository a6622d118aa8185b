package emend

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a line-oriented comparison of the text before and after
// a rewrite: removed lines prefixed with "-", added with "+", common
// with two spaces. Empty when the texts are equal.
func Diff(before, after string) string {
	if before == after {
		return ""
	}
	var b strings.Builder
	writeDiff(&b, before, after, nil)
	return b.String()
}

// FprintDiff writes the comparison to w, colorized when w is a
// terminal: removals red, additions green.
func FprintDiff(w io.Writer, before, after string) {
	if before == after {
		return
	}
	var colors *diffColors
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		colors = &diffColors{
			del: color.New(color.FgRed).SprintFunc(),
			ins: color.New(color.FgGreen).SprintFunc(),
		}
	}
	writeDiff(w, before, after, colors)
}

// FprintColorDiff is FprintDiff with colors forced on, whatever w is.
func FprintColorDiff(w io.Writer, before, after string) {
	if before == after {
		return
	}
	writeDiff(w, before, after, &diffColors{
		del: color.New(color.FgRed).SprintFunc(),
		ins: color.New(color.FgGreen).SprintFunc(),
	})
}

type diffColors struct {
	del func(...any) string
	ins func(...any) string
}

func writeDiff(w io.Writer, before, after string, colors *diffColors) {
	dmp := diffpatch.New()
	// line-mode diff: remap lines to runes, diff, map back
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			writeLines(w, "- ", d.Text, colors, true)
		case diffpatch.DiffInsert:
			writeLines(w, "+ ", d.Text, colors, false)
		default:
			writeLines(w, "  ", d.Text, nil, false)
		}
	}
}

func writeLines(w io.Writer, prefix, text string, colors *diffColors, del bool) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		out := prefix + line
		if colors != nil {
			if del {
				out = colors.del(out)
			} else {
				out = colors.ins(out)
			}
		}
		io.WriteString(w, out+"\n")
	}
}
