// Package session persists the bearer token and the cached user record
// between runs, and notifies subscribers when another process changes them.
// It is the only shared mutable state in the client; writes are
// last-writer-wins and change notification is best-effort.
package session

// Storage keys, kept identical to the wire-era client so an existing
// session file keeps working.
const (
	KeyToken = "cliq_crm_token"
	KeyUser  = "cliq_crm_user"
)

// Store is a never-failing key-value session store. A malformed or
// unreadable backing file is treated as absent and logged, never surfaced.
type Store interface {
	// Get returns the stored value and whether it was present.
	Get(key string) (string, bool)

	// Set stores the value for key.
	Set(key string, value string)

	// Remove deletes key if present.
	Remove(key string)

	// Clear removes the token and user in one write and reports whether a
	// token was actually present. The report drives the exactly-once
	// forced-logout navigation.
	Clear() bool

	// Watch registers fn for external changes to key. fn receives the new
	// value (ok=false means removed). Delivery is best-effort with no
	// ordering guarantee; changes made through this same Store instance are
	// not echoed back.
	Watch(key string, fn func(value string, ok bool)) (stop func())

	// Close releases the change watcher.
	Close() error
}
