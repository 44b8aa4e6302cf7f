// Package syncmap offers a lightweight, generic, concurrency-safe map with
// basic Lookup/Set/Delete/Keys operations guarded by a sync.RWMutex.  It is
// intentionally minimal and tuned to the needs of the stack registries.
package syncmap
