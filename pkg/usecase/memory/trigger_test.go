package memory_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/rex-ai/rex/pkg/adapter"
	"github.com/rex-ai/rex/pkg/config"
	"github.com/rex-ai/rex/pkg/model"
	"github.com/rex-ai/rex/pkg/repository"
	"github.com/rex-ai/rex/pkg/usecase/memory"
)

func seededUseCase(t *testing.T, ctx context.Context, userID string) *memory.UseCase {
	t.Helper()
	uc := memory.New(repository.NewMemory(), adapter.NewLocalEmbedder(384), config.Default())

	seeds := []struct {
		category model.MemoryCategory
		content  string
	}{
		{model.CategoryTopics, "Python is a high-level programming language"},
		{model.CategoryProjects, "Web scraping project using Python"},
		{model.CategoryTimeline, "User: let's plan the launch\nAI: noted"},
	}
	for _, seed := range seeds {
		_, err := uc.Store(ctx, userID, model.NewMemory(seed.category, seed.content))
		gt.NoError(t, err)
	}
	return uc
}

func TestProcessTriggerRecall(t *testing.T) {
	ctx := context.Background()
	uc := seededUseCase(t, ctx, "u1")

	result := uc.ProcessTrigger(ctx, "u1", "REX, recall Python", map[string]any{})

	gt.Equal(t, result.Error, "")
	gt.Equal(t, result.TriggerType, model.TriggerRecall)
	gt.Equal(t, result.Topic, "Python")
	gt.Equal(t, len(result.Memories) >= 1, true)
}

func TestProcessTriggerProjectUpdate(t *testing.T) {
	ctx := context.Background()
	uc := seededUseCase(t, ctx, "u1")

	result := uc.ProcessTrigger(ctx, "u1", "REX, update on web scraping project", map[string]any{})

	gt.Equal(t, result.TriggerType, model.TriggerProjectUpdate)
	gt.Equal(t, result.Project, "web scraping project")
	gt.Equal(t, len(result.Memories), 1)
	gt.Equal(t, result.Memories[0]["content"], "Web scraping project using Python")
	gt.Equal(t, result.Memories[0]["category"], "projects")
}

func TestProcessTriggerRememberTargetsTimeline(t *testing.T) {
	ctx := context.Background()
	uc := seededUseCase(t, ctx, "u1")

	result := uc.ProcessTrigger(ctx, "u1", "REX, remember the launch", map[string]any{})

	gt.Equal(t, result.TriggerType, model.TriggerRememberTopic)
	gt.Equal(t, result.Topic, "the launch")
	for _, mem := range result.Memories {
		gt.Equal(t, mem["category"], "timeline")
	}
}

func TestProcessTriggerWhatDidWeSay(t *testing.T) {
	ctx := context.Background()
	uc := seededUseCase(t, ctx, "u1")

	result := uc.ProcessTrigger(ctx, "u1", "REX, what did we say about Python", map[string]any{})

	gt.Equal(t, result.TriggerType, model.TriggerWhatDidWeSay)
	gt.Equal(t, result.Topic, "Python")
	gt.Equal(t, len(result.Memories) >= 1, true)
}

func TestProcessTriggerDefaultHandler(t *testing.T) {
	ctx := context.Background()
	uc := seededUseCase(t, ctx, "u1")

	result := uc.ProcessTrigger(ctx, "u1", "REX, tell me about Python", map[string]any{})

	gt.Equal(t, result.TriggerType, model.TriggerGeneral)
	gt.Equal(t, result.Query, "tell me about Python")
}

func TestProcessTriggerMissingMarker(t *testing.T) {
	ctx := context.Background()
	uc := seededUseCase(t, ctx, "u1")

	result := uc.ProcessTrigger(ctx, "u1", "hello there", map[string]any{})

	gt.Equal(t, result.Error, "Invalid trigger phrase format")
	gt.Equal(t, result.TriggerType, model.TriggerType(""))
	gt.Equal(t, len(result.Memories), 0)
}

func TestProcessTriggerMarkerIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	uc := seededUseCase(t, ctx, "u1")

	result := uc.ProcessTrigger(ctx, "u1", "rex, recall Python", map[string]any{})
	gt.Equal(t, result.Error, "Invalid trigger phrase format")
}

func TestProcessTriggerKeywordIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	uc := seededUseCase(t, ctx, "u1")

	result := uc.ProcessTrigger(ctx, "u1", "REX, Recall Python", map[string]any{})
	gt.Equal(t, result.TriggerType, model.TriggerRecall)
	gt.Equal(t, result.Topic, "Python")
}

func TestProcessTriggerPreservesTopicCasing(t *testing.T) {
	ctx := context.Background()
	uc := seededUseCase(t, ctx, "u1")

	result := uc.ProcessTrigger(ctx, "u1", "REX, recall The Big Migration", map[string]any{})
	gt.Equal(t, result.Topic, "The Big Migration")
}

func TestProcessTriggerUnknownUser(t *testing.T) {
	ctx := context.Background()
	uc := memory.New(repository.NewMemory(), adapter.NewLocalEmbedder(384), config.Default())

	result := uc.ProcessTrigger(ctx, "stranger", "REX, recall anything", map[string]any{})
	gt.Equal(t, result.TriggerType, model.TriggerRecall)
	gt.Equal(t, len(result.Memories), 0)
}
