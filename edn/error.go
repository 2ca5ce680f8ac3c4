package edn

import "fmt"

// ErrorKind classifies an Error: Parse for textual issues during
// tokenization/structuring, Deserialize for a value/record type mismatch,
// Iter for attempting to iterate a non-container value.
type ErrorKind int

const (
	ParseError ErrorKind = iota
	DeserializeError
	IterError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "Parse"
	case DeserializeError:
		return "Deserialize"
	case IterError:
		return "Iter"
	default:
		return "Error"
	}
}

// Error is the single tagged error type the library ever returns. Offset is
// the byte offset into the source where the failure was detected, or -1
// when an offset isn't meaningful (Deserialize and Iter errors). The parser
// never wraps or discards these: the first error aborts the parse and
// propagates to the caller unchanged. The struct decoder prefixes a failing
// field's name with %w wrapping, so errors.As still recovers the Error.
type Error struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

// Error returns Message verbatim. Sub-messages are literal and pinned by
// tests, so no Kind/Offset decoration is added here; callers that want the
// offset use the Offset field directly.
func (e Error) Error() string {
	return e.Message
}

func parseErrf(offset int, format string, args ...any) error {
	return Error{Kind: ParseError, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

func deserializeErrf(format string, args ...any) error {
	return Error{Kind: DeserializeError, Offset: -1, Message: fmt.Sprintf(format, args...)}
}

func iterErrf(format string, args ...any) error {
	return Error{Kind: IterError, Offset: -1, Message: fmt.Sprintf(format, args...)}
}
