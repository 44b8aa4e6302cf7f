// Package cmd implements all sub-commands that make up the mcpstack
// command-line interface.  Each file in this directory registers a single
// sub-command (build, serve, pipeline, list-tools, …).  The plumbing shared
// between commands such as configuration loading or registry discovery is
// located in shared.go.
package cmd
