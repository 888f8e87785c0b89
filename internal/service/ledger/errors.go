package ledger

import "fmt"

// ValidationError blocks an event before any state changes. Field names the
// offending form input so the UI can point at it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnresolvedReferenceError reports a financial event whose target entity
// could not be resolved. The event is rejected, not silently dropped.
type UnresolvedReferenceError struct {
	Kind string // entity kind, e.g. "farm", "inventory_item"
	Ref  string // the id or name that failed to resolve
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved %s reference %q", e.Kind, e.Ref)
}
