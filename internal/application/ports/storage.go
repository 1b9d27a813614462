package ports

import "context"

// Storage is a file backend addressed by slash-separated relative paths.
type Storage interface {
	// Save writes content and returns the path actually used, which differs
	// from path when the backend renames to avoid a collision.
	Save(ctx context.Context, path string, content []byte) (string, error)
	Exists(ctx context.Context, path string) (bool, error)
	// Delete removes path; a missing file is not an error.
	Delete(ctx context.Context, path string) error
	URL(path string) string
}
