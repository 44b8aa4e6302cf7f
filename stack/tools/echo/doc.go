// Package echo provides the built-in echo tool used as a smoke-test plugin
// and as the reference implementation of the tool capability contract.
package echo
