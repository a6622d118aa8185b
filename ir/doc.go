// Package ir is the tree representation edited by the rest of the module.
//
// A Node is either an interior construct (tag + ordered metadata +
// children) or a terminal literal (string, symbol, number, bool).
// Nodes are persistent values: nothing in this module mutates a Node
// after construction, and every edit builds a new Node. Structural
// sharing between versions is allowed and not observable.
//
// Metadata is an ordered mapping. The recognized keys are "line" and
// "column" (the node's start), the end markers "closing", "do", "end"
// and "end_of_expression" (positions one past the closing token, used to
// resolve spans), and "leading_comments"/"trailing_comments". Everything
// else is opaque and passed through unchanged.
//
// # Related Packages
//
//   - github.com/emend-tools/emend/span - resolve a Node's source range
//   - github.com/emend-tools/emend/zipper - navigate and edit trees
//   - github.com/emend-tools/emend/attach - place comments on Nodes
package ir
