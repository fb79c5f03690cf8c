// iface.go defines KV, the persistence seam used by the watch store.
//
// The SQLite *Store and the in-process *Memory both satisfy it; tests and
// ephemeral sessions use Memory, the CLI uses Store.
package store

// KV is a string key-value store with last-write-wins semantics.
type KV interface {
	// Get returns the value under key and whether it exists.
	Get(key string) (string, bool, error)

	// Set replaces the value under key.
	Set(key, value string) error

	// Delete removes key; missing keys are not an error.
	Delete(key string) error

	// Keys lists stored keys in lexical order.
	Keys() ([]string, error)
}

var (
	_ KV = (*Store)(nil)
	_ KV = (*Memory)(nil)
)
