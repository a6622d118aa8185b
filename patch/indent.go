package patch

import "strings"

const indentUnit = "  "

// reindent prefixes every non-first replacement line with the
// indentation depth of the text before the patch start, in 2-space
// units. When the patch starts after non-blank text and the
// replacement's second line already sits one level deeper than its
// first, the depth is bumped one extra level so a replacement carrying
// a nested block is not flattened against the enclosing line.
func reindent(replLines []string, prefix string) []string {
	if len(replLines) < 2 {
		return replLines
	}
	depth := indentDepth(prefix)
	if strings.TrimSpace(prefix) != "" &&
		indentDepth(replLines[1]) == indentDepth(replLines[0])+1 {
		depth++
	}
	if depth == 0 {
		return replLines
	}
	tab := strings.Repeat(indentUnit, depth)
	res := make([]string, len(replLines))
	res[0] = replLines[0]
	for i := 1; i < len(replLines); i++ {
		res[i] = tab + replLines[i]
	}
	return res
}

// indentDepth counts leading 2-space units.
func indentDepth(s string) int {
	spaces := 0
	for spaces < len(s) && s[spaces] == ' ' {
		spaces++
	}
	return spaces / 2
}
