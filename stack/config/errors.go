package config

import "fmt"

// ConflictError reports an environment variable defined twice with differing
// values during a merge.
type ConflictError struct {
	Key      string
	Existing string
	Incoming string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("env conflict: %s (%q vs %q)", e.Key, e.Existing, e.Incoming)
}

// MissingEnvVarError reports a mandatory environment variable that is absent
// after all merges were applied.
type MissingEnvVarError struct {
	Owner string
	Key   string
}

func (e *MissingEnvVarError) Error() string {
	return fmt.Sprintf("%s: missing required env var %s", e.Owner, e.Key)
}
