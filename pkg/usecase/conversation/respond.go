package conversation

import (
	"github.com/rex-ai/rex/pkg/model"
)

// respond assembles a reply for an ordinary turn. Response text generation
// is a placeholder for an LLM call; the contract here is the metadata and
// the used memory IDs.
func (uc *UseCase) respond(userInput string, memories []*model.Memory) *model.ConversationResponse {
	used := make([]model.MemoryID, 0, len(memories))
	for _, mem := range memories {
		used = append(used, mem.ID)
	}

	quality := "standard"
	text := "Here's a response to: " + userInput
	if len(memories) > 0 {
		quality = "high"
		text = "Based on our conversation context, here's a response to: " + userInput
	}

	return &model.ConversationResponse{
		AIResponse:   text,
		UsedMemories: used,
		Metadata: map[string]any{
			"context_quality": quality,
			"memory_count":    len(memories),
		},
	}
}

// respondWithRecall assembles a reply for an explicit recall. A recall that
// found nothing (including a malformed trigger) acknowledges the gap while
// keeping the conversation going.
func (uc *UseCase) respondWithRecall(recalled *model.RecallResult) *model.ConversationResponse {
	topic := recalled.Subject()

	var used []model.MemoryID
	for _, mem := range recalled.Memories {
		if id, ok := mem["id"].(string); ok && id != "" {
			used = append(used, model.MemoryID(id))
		}
	}

	text := "I don't have specific information about " + topic + "."
	if len(recalled.Memories) > 0 {
		text = "Here's what I remember about " + topic + ":"
		for _, mem := range recalled.Memories {
			if content, ok := mem["content"].(string); ok {
				text += "\n- " + content
			}
		}
	}

	return &model.ConversationResponse{
		AIResponse:   text,
		UsedMemories: used,
		Metadata: map[string]any{
			"context_quality": "explicit_recall",
			"memory_count":    len(recalled.Memories),
			"recall_topic":    topic,
		},
	}
}
