// Package tool defines the capability contract pluggable units implement
// (lifecycle hooks, exposed actions, declared environment requirements), the
// process-wide tool registry and helpers bridging action metadata to MCP tool
// schemas.
package tool
