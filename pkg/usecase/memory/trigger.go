package memory

import (
	"context"
	"strings"

	"github.com/rex-ai/rex/pkg/model"
	"github.com/rex-ai/rex/pkg/utils/logging"
)

// triggerMarker must appear verbatim in a trigger phrase. The keyword that
// follows is matched case-insensitively; the marker itself is not.
const triggerMarker = "REX, "

// triggerRoute pairs a keyword prefix with its recall handler. Routes are
// evaluated in declaration order; the first matching prefix wins.
type triggerRoute struct {
	keyword string
	handle  func(ctx context.Context, userID, arg string) *model.RecallResult
}

func (uc *UseCase) routes() []triggerRoute {
	return []triggerRoute{
		{"recall", uc.handleRecall},
		{"remember", uc.handleRemember},
		{"what did we say about", uc.handleWhatDidWeSay},
		{"update on", uc.handleProjectUpdate},
	}
}

// ProcessTrigger parses an explicit recall phrase and dispatches it to the
// matching handler. A phrase without the marker produces a structured error
// result; no fault is ever raised from this path.
func (uc *UseCase) ProcessTrigger(ctx context.Context, userID, phrase string, tctx map[string]any) *model.RecallResult {
	_, content, found := strings.Cut(phrase, triggerMarker)
	if !found {
		logging.From(ctx).Warn("invalid trigger phrase format", "phrase", phrase)
		return &model.RecallResult{Error: "Invalid trigger phrase format"}
	}

	lowered := strings.ToLower(content)
	for _, route := range uc.routes() {
		if strings.HasPrefix(lowered, route.keyword) {
			arg := strings.TrimSpace(content[len(route.keyword):])
			return route.handle(ctx, userID, arg)
		}
	}

	return uc.handleGeneral(ctx, userID, content)
}

func (uc *UseCase) handleRecall(ctx context.Context, userID, topic string) *model.RecallResult {
	memories := uc.recall(ctx, userID, topic, nil, uc.recallLimit(3))
	return &model.RecallResult{
		TriggerType: model.TriggerRecall,
		Topic:       topic,
		Memories:    memories,
	}
}

// handleRemember targets conversation history: the query is rewritten and
// the search is restricted to the timeline
func (uc *UseCase) handleRemember(ctx context.Context, userID, topic string) *model.RecallResult {
	memories := uc.recall(ctx, userID, "discussion about "+topic,
		[]model.MemoryCategory{model.CategoryTimeline}, uc.recallLimit(3))
	return &model.RecallResult{
		TriggerType: model.TriggerRememberTopic,
		Topic:       topic,
		Memories:    memories,
	}
}

func (uc *UseCase) handleWhatDidWeSay(ctx context.Context, userID, topic string) *model.RecallResult {
	memories := uc.recall(ctx, userID, topic, nil, uc.recallLimit(3))
	return &model.RecallResult{
		TriggerType: model.TriggerWhatDidWeSay,
		Topic:       topic,
		Memories:    memories,
	}
}

func (uc *UseCase) handleProjectUpdate(ctx context.Context, userID, project string) *model.RecallResult {
	memories := uc.recall(ctx, userID, project,
		[]model.MemoryCategory{model.CategoryProjects}, uc.recallLimit(5))
	return &model.RecallResult{
		TriggerType: model.TriggerProjectUpdate,
		Project:     project,
		Memories:    memories,
	}
}

// handleGeneral treats the whole trigger content as a free-text query
func (uc *UseCase) handleGeneral(ctx context.Context, userID, query string) *model.RecallResult {
	memories := uc.recall(ctx, userID, query, nil, uc.recallLimit(3))
	return &model.RecallResult{
		TriggerType: model.TriggerGeneral,
		Query:       query,
		Memories:    memories,
	}
}

// recall retrieves and serializes memories for a trigger handler.
// Retrieval faults degrade to an empty list; trigger processing is a
// terminal, reported result, never a thrown fault.
func (uc *UseCase) recall(ctx context.Context, userID, query string, categories []model.MemoryCategory, limit int) []map[string]any {
	memories, err := uc.Retrieve(ctx, userID, query, categories, limit)
	if err != nil {
		logging.From(ctx).Error("recall retrieval failed", "user_id", userID, "error", err)
		return []map[string]any{}
	}

	serialized := make([]map[string]any, 0, len(memories))
	for _, mem := range memories {
		serialized = append(serialized, mem.ToMap())
	}
	return serialized
}
