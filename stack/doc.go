// Package stack implements the orchestration engine: an immutable, chainable
// builder that composes independently-authored tool plugins into a validated
// pipeline, drives their lifecycle, persists pipeline definitions and turns a
// built pipeline into host-specific bootstrap configuration via pluggable
// generator backends.
package stack
