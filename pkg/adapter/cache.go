package adapter

import (
	"context"

	"github.com/dgraph-io/ristretto"
	"github.com/m-mizutani/goerr/v2"
)

// CachedEmbedder wraps an EmbeddingClient with a ristretto cache keyed by
// input text. Timeline records repeat query texts often enough that this
// keeps the provider off the hot path.
type CachedEmbedder struct {
	inner EmbeddingClient
	cache *ristretto.Cache
}

func NewCachedEmbedder(inner EmbeddingClient) (*CachedEmbedder, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10_000,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create embedding cache")
	}

	return &CachedEmbedder{
		inner: inner,
		cache: cache,
	}, nil
}

func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := e.cache.Get(text); ok {
		if vec, ok := cached.([]float32); ok {
			return vec, nil
		}
	}

	vec, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	// cost is the vector size in bytes
	e.cache.Set(text, vec, int64(len(vec)*4))
	return vec, nil
}

func (e *CachedEmbedder) Dimensions() int {
	return e.inner.Dimensions()
}

// Close releases cache resources
func (e *CachedEmbedder) Close() {
	e.cache.Close()
}
