package archive_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rex-ai/rex/pkg/adapter"
	"github.com/rex-ai/rex/pkg/archive"
	"github.com/rex-ai/rex/pkg/model"
)

func TestArchiveAddAndSearch(t *testing.T) {
	ctx := context.Background()
	arc := archive.NewEphemeral()
	embedder := adapter.NewLocalEmbedder(64)

	contents := []string{
		"Python is a programming language",
		"The weather was nice yesterday",
	}
	for _, content := range contents {
		mem := model.NewMemory(model.CategoryTopics, content)
		vec, err := embedder.Embed(ctx, content)
		gt.NoError(t, err)
		mem.Embedding = vec

		gt.NoError(t, arc.Add(ctx, "u1", mem))
	}

	query, err := embedder.Embed(ctx, "Python is a programming language")
	gt.NoError(t, err)

	results, err := arc.Search(ctx, "u1", query, 1)
	gt.NoError(t, err)
	gt.Equal(t, len(results), 1)
	gt.Equal(t, results[0].Content, "Python is a programming language")
	gt.Equal(t, results[0].Metadata["category"], "topics")
}

func TestArchiveSkipsEmptyEmbeddings(t *testing.T) {
	ctx := context.Background()
	arc := archive.NewEphemeral()

	mem := model.NewMemory(model.CategoryTopics, "nothing to index")
	gt.NoError(t, arc.Add(ctx, "u1", mem))

	query := make([]float32, 64)
	query[0] = 1

	results, err := arc.Search(ctx, "u1", query, 5)
	gt.NoError(t, err)
	gt.Equal(t, len(results), 0)
}

func TestArchiveSkipsZeroVectors(t *testing.T) {
	ctx := context.Background()
	arc := archive.NewEphemeral()
	embedder := adapter.NewLocalEmbedder(64)

	// a failed embedding provider degrades to a zero vector; archiving it
	// would surface NaN similarities that break JSON encoding
	degraded := model.NewMemory(model.CategoryTopics, "degraded entry")
	degraded.Embedding = make([]float32, 64)
	gt.NoError(t, arc.Add(ctx, "u1", degraded))

	healthy := model.NewMemory(model.CategoryTopics, "healthy entry")
	vec, err := embedder.Embed(ctx, "healthy entry")
	gt.NoError(t, err)
	healthy.Embedding = vec
	gt.NoError(t, arc.Add(ctx, "u1", healthy))

	results, err := arc.Search(ctx, "u1", vec, 5)
	gt.NoError(t, err)
	gt.Equal(t, len(results), 1)
	gt.Equal(t, results[0].Content, "healthy entry")
	gt.Equal(t, math.IsNaN(float64(results[0].Similarity)), false)

	_, err = json.Marshal(results)
	gt.NoError(t, err)
}

func TestArchiveLimitClampedToStored(t *testing.T) {
	ctx := context.Background()
	arc := archive.NewEphemeral()
	embedder := adapter.NewLocalEmbedder(64)

	mem := model.NewMemory(model.CategoryThings, "only document")
	vec, err := embedder.Embed(ctx, "only document")
	gt.NoError(t, err)
	mem.Embedding = vec
	gt.NoError(t, arc.Add(ctx, "u1", mem))

	results, err := arc.Search(ctx, "u1", vec, 10)
	gt.NoError(t, err)
	gt.Equal(t, len(results), 1)
}

func TestArchiveIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	arc := archive.NewEphemeral()
	embedder := adapter.NewLocalEmbedder(64)

	mem := model.NewMemory(model.CategoryTopics, "private note")
	vec, err := embedder.Embed(ctx, "private note")
	gt.NoError(t, err)
	mem.Embedding = vec
	gt.NoError(t, arc.Add(ctx, "alice", mem))

	results, err := arc.Search(ctx, "bob", vec, 5)
	gt.NoError(t, err)
	gt.Equal(t, len(results), 0)
}
