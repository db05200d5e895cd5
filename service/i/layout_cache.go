package i

import "context"

// LayoutCache stores encoded layouts by key.
type LayoutCache interface {
	// Fetch returns the cached value for key. On a miss it calls fill once,
	// even across concurrent callers, stores the result and returns it.
	Fetch(ctx context.Context, key string, fill func() ([]byte, error)) ([]byte, error)
}
