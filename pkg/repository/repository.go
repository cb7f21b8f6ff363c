package repository

import (
	"context"

	"github.com/rex-ai/rex/pkg/model"
)

// Repository defines categorized per-user memory storage. Implementations
// keep one ordered sequence per category per user, preserving insertion
// order within each category.
type Repository interface {
	// PutMemory appends a memory to its category sequence, lazily
	// initializing the user's partitions on first write
	PutMemory(ctx context.Context, userID string, mem *model.Memory) error

	// ListMemories returns all memories of the given categories in category
	// order then insertion order. A nil categories slice means all
	// categories in canonical order. An unknown user yields an empty list.
	ListMemories(ctx context.Context, userID string, categories []model.MemoryCategory) ([]*model.Memory, error)

	// HasUser reports whether any memory was ever stored for the user
	HasUser(ctx context.Context, userID string) bool
}
