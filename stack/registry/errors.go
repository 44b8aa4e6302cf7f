package registry

import (
	"fmt"
	"strings"
)

// NotFoundError reports an identifier that is absent from a registry after
// discovery has run.
type NotFoundError struct {
	Kind  string
	ID    string
	Known []string
}

func (e *NotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown %s: %q (none registered)", e.Kind, e.ID)
	}
	return fmt.Sprintf("unknown %s: %q (known: %s)", e.Kind, e.ID, strings.Join(e.Known, ", "))
}

// DuplicateError reports a registration that would shadow an existing entry.
type DuplicateError struct {
	Kind string
	ID   string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Kind, e.ID)
}
