package health

import "fmt"

// ValidationError reports an input the calculator cannot work with.
// Field uses the same dotted names as the profile file.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}
