package nestegg

import "fmt"

// ValidationError reports a record rejected at the ingestion boundary.
// The engine itself never validates: records are checked before they reach
// it, so no computation ever sees a malformed number or an empty identity.
type ValidationError struct {
	Record string // record kind: "asset", "transaction" or "goal"
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Record, e.Field, e.Reason)
}
