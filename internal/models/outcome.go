package models

// OutcomeCategory classifies one run of the external tool.
type OutcomeCategory int

const (
	OutcomeSuccess OutcomeCategory = iota
	// OutcomeToolError covers non-empty stderr, spawn failures, timeouts
	// and stdout with fewer than two lines.
	OutcomeToolError
	OutcomeUnitNotFound
	OutcomeParseError
)

// Marker substrings sniffed from the second line of tool output.
const (
	MarkerUnitNotFound = "No such unit"
	MarkerParseError   = "Expected"
)

// String returns the category name used in log lines.
func (o OutcomeCategory) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeToolError:
		return "tool_error"
	case OutcomeUnitNotFound:
		return "unit_not_found"
	case OutcomeParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

// Emits reports whether the category produces a record.
func (o OutcomeCategory) Emits() bool {
	return o == OutcomeSuccess
}
