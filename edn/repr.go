package edn

import "github.com/alecthomas/repr"

// Repr renders v's underlying Go representation (as opposed to its EDN
// Display text from String) for debugging and test failure output.
func Repr(v Value) string {
	return repr.String(v, repr.Indent("  "))
}
