package extract

// ExtractionError is returned when the markup lacks a required structure.
type ExtractionError struct {
	// Reason is the human-readable cause, surfaced verbatim to callers.
	Reason string
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	return e.Reason
}

// ErrTableNotFound is returned when no table carries the records marker class.
// This usually means the endpoint changed shape or served an error page.
var ErrTableNotFound = &ExtractionError{Reason: "table not found"}
