package pos

import "fmt"

// Range is a contiguous span of source text. Start is inclusive and End
// is exclusive in column terms: the text covered on the last line runs up
// to but not including End.Column.
type Range struct {
	Start Position
	End   Position
}

func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// SingleLine reports whether the range starts and ends on the same line.
func (r Range) SingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Lines is the number of source lines the range touches.
func (r Range) Lines() int {
	return r.End.Line - r.Start.Line + 1
}
