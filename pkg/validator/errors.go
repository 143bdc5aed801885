package validator

import "fmt"

// DuplicateNameError is returned by Registry.Register when a validator with
// the same name is already registered. Names must be unique so that
// include/exclude filters are unambiguous.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("validator %q is already registered", e.Name)
}

// UnknownValidatorError is returned when an include or exclude filter names
// a validator that is not registered. Filters fail fast instead of silently
// matching nothing, so typos cannot drop checks unnoticed.
type UnknownValidatorError struct {
	Name string
}

func (e *UnknownValidatorError) Error() string {
	return fmt.Sprintf("unknown validator: %q", e.Name)
}

// ValidatorExecutionError is returned when a validator fails during Check.
// It identifies the failing validator and wraps the original failure. A
// failing validator aborts the whole run by default; no partial report is
// returned.
type ValidatorExecutionError struct {
	Name string
	Err  error
}

func (e *ValidatorExecutionError) Error() string {
	return fmt.Sprintf("validator %q failed: %v", e.Name, e.Err)
}

func (e *ValidatorExecutionError) Unwrap() error {
	return e.Err
}
