package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rex-ai/rex/pkg/model"
)

// ErrCategoryNotFound indicates a lookup against a category tag outside the
// closed enumeration. The HTTP boundary maps it to a 404.
var ErrCategoryNotFound = goerr.New("memory category not found")

// UserMemories lists a user's stored memories in transport form. With a
// category it returns the first memories of that partition in insertion
// order; without one it returns memories from all categories, newest first.
// An unknown user yields an empty list.
func (uc *UseCase) UserMemories(ctx context.Context, userID, category string, limit int) ([]map[string]any, error) {
	if limit <= 0 {
		limit = 10
	}

	if !uc.repo.HasUser(ctx, userID) {
		return []map[string]any{}, nil
	}

	var memories []*model.Memory
	if category != "" {
		cat, err := model.ParseCategory(category)
		if err != nil {
			return nil, goerr.Wrap(ErrCategoryNotFound, "unknown category", goerr.V("category", category))
		}

		memories, err = uc.repo.ListMemories(ctx, userID, []model.MemoryCategory{cat})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list memories", goerr.V("user_id", userID))
		}
	} else {
		var err error
		memories, err = uc.repo.ListMemories(ctx, userID, nil)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list memories", goerr.V("user_id", userID))
		}

		sort.SliceStable(memories, func(i, j int) bool {
			return memories[i].Timestamp > memories[j].Timestamp
		})
	}

	if len(memories) > limit {
		memories = memories[:limit]
	}

	serialized := make([]map[string]any, 0, len(memories))
	for _, mem := range memories {
		serialized = append(serialized, mem.ToMap())
	}
	return serialized, nil
}
