package pos

import "fmt"

// Position is a 1-based location in source text. The zero value is not a
// valid location; absent positions are represented by nil pointers and
// coalesce to line 0, column 0 for comparison only.
type Position struct {
	Line   int
	Column int
}

func New(line, column int) Position {
	return Position{Line: line, Column: column}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Compare orders positions by line, then column. Nil coalesces to 0 on
// both fields, so a nil position sorts before any real one.
func Compare(a, b *Position) int {
	al, ac := coalesce(a)
	bl, bc := coalesce(b)
	if al != bl {
		if al < bl {
			return -1
		}
		return 1
	}
	if ac != bc {
		if ac < bc {
			return -1
		}
		return 1
	}
	return 0
}

func coalesce(p *Position) (int, int) {
	if p == nil {
		return 0, 0
	}
	return p.Line, p.Column
}

// Max returns the later of a and b under Compare.
func Max(a, b Position) Position {
	if Compare(&a, &b) >= 0 {
		return a
	}
	return b
}
