// Package kvstore provides the synchronous key-value persistence seam used
// by the note repository, the category index, and the editor's draft slot.
// Values are JSON-serialized under string keys.
package kvstore

// Store is a synchronous string-keyed JSON value store.
//
// Get unmarshals the value for key into out and reports whether the key was
// present. Set marshals v and writes it under key. Delete removes key and is
// a no-op when the key is absent. Write failures (full disk, closed store)
// are returned to the caller, never swallowed.
type Store interface {
	Get(key string, out any) (bool, error)
	Set(key string, v any) error
	Delete(key string) error
	Close() error
}
