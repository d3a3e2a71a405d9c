package store

// Storage keys shared with every chronos frontend reading the same medium.
const (
	KeySessions      = "chronos_sessions"
	KeyActiveSession = "chronos_active_session"
)

// A Change records a mutation of a single key in the medium. Value is nil
// when the key was removed.
type Change struct {
	Key   string
	Value []byte
}

// Token identifies a watcher so that its own writes are not echoed back
// to it.
type Token int

// Medium is a string-keyed persistence medium shared by all chronos
// instances in the same environment. Watch delivers every change made
// under a different token, which lets an instance reconcile writes made
// by its peers without reacting to its own.
type Medium interface {
	// Get returns the value stored under key, or nil when the key is
	// absent.
	Get(key string) ([]byte, error)

	// Set stores value under key and notifies all watchers except origin.
	Set(key string, value []byte, origin Token) error

	// Delete removes key entirely and notifies all watchers except origin.
	Delete(key string, origin Token) error

	// Watch registers fn to receive changes made by other tokens. The
	// returned function removes the watcher.
	Watch(fn func(Change)) (Token, func())

	Close() error
}
