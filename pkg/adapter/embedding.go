package adapter

import "context"

// EmbeddingClient maps text to a fixed-length vector. Implementations are
// opaque to the memory core; a failing client is degraded to a zero vector
// by the caller, never propagated.
type EmbeddingClient interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}
