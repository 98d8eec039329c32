package driven

// KVStore provides durable key-value persistence for small documents.
// The preference store keeps the whole preference document under a
// single key, so implementations need no transactions or range scans.
type KVStore interface {
	// Get returns the value for the key. The second return is false
	// when the key does not exist; that is not an error.
	Get(key string) ([]byte, bool, error)

	// Set writes the value under the key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(key string) error

	// Close releases resources.
	Close() error
}
