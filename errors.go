package cashcast

import "fmt"

// Error types for projection failures. A ParseError means a persisted
// token or occurrence string could not be understood; a
// ValidationError means a well-formed record declares impossible
// terms. Both are fatal to the run: the orchestrator stops at the
// first failing record and returns no partial ledger.

// ParseError is returned for a malformed occurrence string or an
// unknown regularity/period token.
type ParseError struct {
	Input  string // the offending token or string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// ValidationError is returned when an instrument record violates a
// domain rule (transfer endpoints, date ordering).
type ValidationError struct {
	Kind    string // instrument kind, e.g. "loan"
	Account string // account the record targets, when known
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Account == "" {
		return fmt.Sprintf("invalid %s record: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("invalid %s record on %q: %s", e.Kind, e.Account, e.Reason)
}
