package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Attach bool
	Span   bool
	Patch  bool
	Match  bool
	Sitter bool
}

var d *debug

func init() {
	d = &debug{}
	d.Attach = boolEnv("EMEND_DEBUG_ATTACH")
	d.Span = boolEnv("EMEND_DEBUG_SPAN")
	d.Patch = boolEnv("EMEND_DEBUG_PATCH")
	d.Match = boolEnv("EMEND_DEBUG_MATCH")
	d.Sitter = boolEnv("EMEND_DEBUG_SITTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Attach() bool {
	return d.Attach
}
func Span() bool {
	return d.Span
}
func Patch() bool {
	return d.Patch
}
func Match() bool {
	return d.Match
}
func Sitter() bool {
	return d.Sitter
}
