package adapter_test

import (
	"context"
	"math"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rex-ai/rex/pkg/adapter"
)

func TestLocalEmbedderDeterministic(t *testing.T) {
	ctx := context.Background()
	embedder := adapter.NewLocalEmbedder(384)

	a, err := embedder.Embed(ctx, "the same text")
	gt.NoError(t, err)
	b, err := embedder.Embed(ctx, "the same text")
	gt.NoError(t, err)

	gt.Equal(t, a, b)
}

func TestLocalEmbedderDistinguishesTexts(t *testing.T) {
	ctx := context.Background()
	embedder := adapter.NewLocalEmbedder(384)

	a, err := embedder.Embed(ctx, "first text")
	gt.NoError(t, err)
	b, err := embedder.Embed(ctx, "second text")
	gt.NoError(t, err)

	gt.V(t, a).NotEqual(b)
}

func TestLocalEmbedderUnitNorm(t *testing.T) {
	ctx := context.Background()
	embedder := adapter.NewLocalEmbedder(384)

	vec, err := embedder.Embed(ctx, "normalize me")
	gt.NoError(t, err)
	gt.Equal(t, len(vec), 384)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	norm = math.Sqrt(norm)
	gt.Equal(t, math.Abs(norm-1) < 1e-5, true)
}

func TestLocalEmbedderDefaultDimensions(t *testing.T) {
	embedder := adapter.NewLocalEmbedder(0)
	gt.Equal(t, embedder.Dimensions(), 384)
}

func TestCachedEmbedderDelegates(t *testing.T) {
	ctx := context.Background()
	inner := adapter.NewLocalEmbedder(64)

	cached, err := adapter.NewCachedEmbedder(inner)
	gt.NoError(t, err)
	defer cached.Close()

	gt.Equal(t, cached.Dimensions(), 64)

	want, err := inner.Embed(ctx, "cache me")
	gt.NoError(t, err)

	// repeated calls return the same vector whether served from the
	// cache or recomputed
	for i := 0; i < 3; i++ {
		got, err := cached.Embed(ctx, "cache me")
		gt.NoError(t, err)
		gt.Equal(t, got, want)
	}
}
