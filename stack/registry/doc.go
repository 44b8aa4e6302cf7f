// Package registry implements the generic plugin registry used for tools,
// presets and host-config backends.  Plugin packages queue enumeration
// sources in their init functions; Discover consumes the queue once per
// registry, mirroring installed-package entry-point scanning in a statically
// compiled world.
package registry
