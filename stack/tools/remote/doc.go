// Package remote wraps an external MCP endpoint as a pluggable tool: the
// remote tool list is imported on initialization and every entry is proxied
// as a local action, namespaced by the endpoint name.
package remote
