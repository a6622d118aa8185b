package ir

// Comment is a free-floating source comment. Before attachment the
// parser owns a flat, line-ordered list of these; after attachment each
// lives in exactly one node's leading or trailing comment list.
//
// PreviousEOLCount and NextEOLCount record how many newlines separate
// the comment from the previous and next token. A NextEOLCount of 0
// means the comment sits on the same line as the code that follows it;
// formatters use the counts to reproduce blank-line spacing.
type Comment struct {
	Line             int
	Column           int
	PreviousEOLCount int
	NextEOLCount     int
	Text             string
}

func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}
