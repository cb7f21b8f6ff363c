package memory

import (
	"context"
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rex-ai/rex/pkg/archive"
	"github.com/rex-ai/rex/pkg/model"
	"github.com/rex-ai/rex/pkg/utils/logging"
)

// Retrieve returns up to limit memories ranked by cosine similarity between
// the query embedding and each stored embedding. A nil categories slice
// searches all categories. Memories without an embedding are excluded from
// ranking but remain stored. The sort is stable, so equal scores keep
// insertion order. An unknown user yields an empty result, not an error.
//
// The configured memory_threshold is intentionally not applied here; low
// scores rank last instead of being filtered, matching the original
// deployment.
func (uc *UseCase) Retrieve(ctx context.Context, userID, query string, categories []model.MemoryCategory, limit int) ([]*model.Memory, error) {
	if !uc.repo.HasUser(ctx, userID) {
		logging.From(ctx).Debug("no memories for user", "user_id", userID)
		return nil, nil
	}

	queryEmbedding := uc.embed(ctx, query)

	candidates, err := uc.repo.ListMemories(ctx, userID, categories)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list memories", goerr.V("user_id", userID))
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	ranked := make([]*model.Memory, 0, len(candidates))
	for _, mem := range candidates {
		if mem.Embedding == nil {
			continue
		}
		mem.RelevanceScore = cosineSimilarity(queryEmbedding, mem.Embedding)
		ranked = append(ranked, mem)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	if limit <= 0 {
		limit = 5
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked, nil
}

// cosineSimilarity computes cosine similarity between two vectors.
// A zero vector on either side yields 0.
func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SearchArchive runs a similarity query against the persistent archive
func (uc *UseCase) SearchArchive(ctx context.Context, userID, query string, limit int) ([]archive.Result, error) {
	if uc.archive == nil {
		return nil, goerr.New("memory archive is not enabled")
	}

	if limit <= 0 {
		limit = uc.recallLimit(5)
	}

	return uc.archive.Search(ctx, userID, uc.embed(ctx, query), limit)
}
