package ports

import "context"

type ProfileCache interface {
	// Get returns (nil, nil) on a cache miss.
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}
