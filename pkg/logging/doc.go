// Package logging provides the shared structured logger used across the
// stack.  It is a thin facade over log/slog that tags every record with a
// subsystem identifier and supports textual level configuration so that the
// CLI and configuration layer can wire verbosity without importing slog
// directly.
package logging
