package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rex-ai/rex/pkg/model"
	"github.com/rex-ai/rex/pkg/utils/logging"
)

// Store embeds and saves a memory into the user's category partition.
// The embedding is assigned here, exactly once; a failing embedding
// provider degrades to a zero vector and is never surfaced to the caller.
func (uc *UseCase) Store(ctx context.Context, userID string, mem *model.Memory) (model.MemoryID, error) {
	mem.Embedding = uc.embed(ctx, mem.Content)

	if mem.Timestamp == "" {
		mem.Timestamp = model.Now()
	}

	if err := uc.repo.PutMemory(ctx, userID, mem); err != nil {
		return "", goerr.Wrap(err, "failed to store memory",
			goerr.V("user_id", userID), goerr.V("category", mem.Category))
	}

	if uc.archive != nil {
		if err := uc.archive.Add(ctx, userID, mem); err != nil {
			logging.From(ctx).Warn("failed to archive memory",
				"memory_id", mem.ID, "error", err)
		}
	}

	logging.From(ctx).Info("stored memory",
		"user_id", userID, "category", mem.Category, "memory_id", mem.ID)

	return mem.ID, nil
}

// embed generates an embedding for the text, substituting a zero vector of
// the provider's dimensionality on any fault
func (uc *UseCase) embed(ctx context.Context, text string) []float32 {
	vec, err := uc.embedder.Embed(ctx, text)
	if err != nil {
		logging.From(ctx).Error("embedding generation failed, using zero vector", "error", err)
		return make([]float32, uc.embedder.Dimensions())
	}
	return vec
}
