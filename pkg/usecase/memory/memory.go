package memory

import (
	"github.com/rex-ai/rex/pkg/adapter"
	"github.com/rex-ai/rex/pkg/archive"
	"github.com/rex-ai/rex/pkg/config"
	"github.com/rex-ai/rex/pkg/repository"
)

// UseCase provides categorized memory storage, similarity retrieval and
// trigger-phrase recall. It owns all memories for all users; callers only
// ever hold transient result lists.
type UseCase struct {
	repo     repository.Repository
	embedder adapter.EmbeddingClient
	archive  *archive.Archive
	cfg      *config.Config
}

// Option is a functional option for UseCase
type Option func(*UseCase)

// WithArchive enables write-through mirroring into a vector archive
func WithArchive(a *archive.Archive) Option {
	return func(uc *UseCase) {
		uc.archive = a
	}
}

// New creates a memory UseCase instance
func New(
	repo repository.Repository,
	embedder adapter.EmbeddingClient,
	cfg *config.Config,
	opts ...Option,
) *UseCase {
	if cfg == nil {
		cfg = config.Default()
	}

	uc := &UseCase{
		repo:     repo,
		embedder: embedder,
		cfg:      cfg,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// recallLimit returns the configured recall limit, or the handler-specific
// fallback when the configuration leaves it unset
func (uc *UseCase) recallLimit(fallback int) int {
	if uc.cfg.MemoryRecallLimit > 0 {
		return uc.cfg.MemoryRecallLimit
	}
	return fallback
}
