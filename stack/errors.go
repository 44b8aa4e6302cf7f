package stack

import (
	"errors"
	"fmt"
)

// ErrNotBuilt is returned by Run when the stack has not been built yet.
var ErrNotBuilt = errors.New("stack not built: call Build before Run")

// ErrNoTools is returned by Build when the stack holds no tools.
var ErrNoTools = errors.New("at least one tool must be added")

// FrozenError reports a composition call on an already-built stack.  Building
// finalizes the composition; no transition returns a built stack to draft.
type FrozenError struct {
	Op string
}

func (e *FrozenError) Error() string {
	return fmt.Sprintf("%s: stack already built, composition is frozen", e.Op)
}

// ActionConflictError reports two tools exposing the same action name.  The
// conflict is a validation error, never a silent override.
type ActionConflictError struct {
	Action   string
	Existing string
	Incoming string
}

func (e *ActionConflictError) Error() string {
	return fmt.Sprintf("action %q of tool %q collides with tool %q", e.Action, e.Incoming, e.Existing)
}

// InitError wraps a tool's own initialization failure.
type InitError struct {
	Tool string
	Err  error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("tool %q failed to initialize: %v", e.Tool, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// FormatError reports a pipeline document that could not be decoded.
type FormatError struct {
	Source string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid pipeline document %q: %v", e.Source, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
