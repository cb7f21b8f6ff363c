package repository

import (
	"context"
	"sync"

	"github.com/rex-ai/rex/pkg/model"
)

// memoryRepo is the in-process Repository implementation. The mutex guards
// map integrity only; the design treats each user partition as
// single-writer and promises no atomicity across operations.
type memoryRepo struct {
	mu    sync.RWMutex
	users map[string]map[model.MemoryCategory][]*model.Memory
}

// NewMemory creates an empty in-process repository
func NewMemory() Repository {
	return &memoryRepo{
		users: make(map[string]map[model.MemoryCategory][]*model.Memory),
	}
}

func (r *memoryRepo) PutMemory(ctx context.Context, userID string, mem *model.Memory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	partitions, ok := r.users[userID]
	if !ok {
		partitions = make(map[model.MemoryCategory][]*model.Memory, len(model.Categories()))
		for _, category := range model.Categories() {
			partitions[category] = nil
		}
		r.users[userID] = partitions
	}

	partitions[mem.Category] = append(partitions[mem.Category], mem)
	return nil
}

func (r *memoryRepo) ListMemories(ctx context.Context, userID string, categories []model.MemoryCategory) ([]*model.Memory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	partitions, ok := r.users[userID]
	if !ok {
		return nil, nil
	}

	if categories == nil {
		categories = model.Categories()
	}

	var memories []*model.Memory
	for _, category := range categories {
		memories = append(memories, partitions[category]...)
	}
	return memories, nil
}

func (r *memoryRepo) HasUser(ctx context.Context, userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[userID]
	return ok
}
