package core

import "context"

// Repository defines the contract for the directory that holds daily notes.
// Adhering to this interface keeps the service independent of the
// underlying storage mechanism.
type Repository interface {
	// Path returns the location of the store.
	Path() string

	// Initialize ensures the store exists (e.g. create the directory and its parents).
	// It must succeed when the store is already there.
	Initialize(ctx context.Context) error

	// CreateIfAbsent creates an empty note named name unless one already exists.
	// Existing content is never touched. It returns the note path and whether
	// this call created it.
	CreateIfAbsent(ctx context.Context, name string) (path string, created bool, err error)
}
