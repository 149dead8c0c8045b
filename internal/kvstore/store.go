// Package kvstore defines the string key/value storage port backing the
// session identity, the local override store and other client-state keys.
// Implementations: an in-process map (tests, single-node default) and redis.
package kvstore

// Store is a flat string key/value persistence port. Get reports presence
// explicitly so callers can distinguish an absent key from an empty value.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}
