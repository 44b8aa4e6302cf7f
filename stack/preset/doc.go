// Package preset contains the built-in preset factories.  A preset produces
// a pre-wired pipeline from a configuration plus free-form options; its tools
// flow through the same validation path as individually added ones.
package preset
