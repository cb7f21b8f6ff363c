package conversation

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rex-ai/rex/pkg/extract"
	"github.com/rex-ai/rex/pkg/model"
	"github.com/rex-ai/rex/pkg/utils/logging"
)

// ProcessTurn handles one conversation turn. Trigger phrases go through the
// recall path and leave a timeline record of the recall event; ordinary
// input is mined for memories, answered with contextually relevant ones and
// recorded on the timeline as an exchange.
func (uc *UseCase) ProcessTurn(ctx context.Context, input *model.ConversationInput) (*model.ConversationResponse, error) {
	if input.UserID == "" || input.SessionID == "" {
		return nil, goerr.New("user_id and session_id are required")
	}

	sess := uc.Session(input.UserID, input.SessionID)

	if input.ConversationHistory != nil {
		sess.History = capHistory(input.ConversationHistory, uc.cfg.MaxSessionHistory)
	}

	var response *model.ConversationResponse
	if trigger, ok := extract.DetectTrigger(input.UserInput); ok {
		recalled := uc.memory.ProcessTrigger(ctx, input.UserID, input.UserInput,
			map[string]any{"session_id": input.SessionID})

		uc.recordRecallEvent(ctx, input.UserID, trigger.Type, trigger.Topic)

		response = uc.respondWithRecall(recalled)
	} else {
		if _, err := uc.memory.ExtractAndStore(ctx, input.UserID, input.UserInput,
			map[string]any{"session_id": input.SessionID, "source": "user_input"}); err != nil {
			logging.From(ctx).Warn("memory extraction failed", "error", err)
		}

		uc.trackActivity(sess, input.UserInput)

		relevant, err := uc.memory.Retrieve(ctx, input.UserID, input.UserInput, nil, uc.contextLimit())
		if err != nil {
			return nil, goerr.Wrap(err, "failed to retrieve context memories")
		}

		response = uc.respond(input.UserInput, relevant)

		uc.recordExchange(ctx, input.UserID, input.UserInput, response.AIResponse)
	}

	sess.LastInteraction = &model.Interaction{
		UserInput:  input.UserInput,
		AIResponse: response.AIResponse,
		Timestamp:  model.Now(),
	}

	return response, nil
}

func (uc *UseCase) contextLimit() int {
	if uc.cfg.ContextMemoryLimit > 0 {
		return uc.cfg.ContextMemoryLimit
	}
	return 3
}

// trackActivity folds entities and preferences from the input into the
// session's active sets
func (uc *UseCase) trackActivity(sess *SessionContext, text string) {
	entities := extract.ExtractEntities(text)
	for _, topic := range entities.Topics {
		sess.ActiveTopics[topic] = struct{}{}
	}
	for _, project := range entities.Projects {
		sess.ActiveProjects[project] = struct{}{}
	}
	for _, pref := range extract.ExtractPreferences(text) {
		sess.IdentifiedPreferences[pref] = struct{}{}
	}
}

// recordExchange stores the exchange itself as a timeline memory
func (uc *UseCase) recordExchange(ctx context.Context, userID, userInput, aiResponse string) {
	mem := model.NewMemory(model.CategoryTimeline, "User: "+userInput+"\nAI: "+aiResponse)
	mem.Metadata = map[string]any{
		"user_input":  userInput,
		"ai_response": aiResponse,
	}

	if _, err := uc.memory.Store(ctx, userID, mem); err != nil {
		logging.From(ctx).Warn("failed to record exchange", "error", err)
	}
}

// recordRecallEvent stores a timeline entry describing the recall event
func (uc *UseCase) recordRecallEvent(ctx context.Context, userID, triggerType, topic string) {
	mem := model.NewMemory(model.CategoryTimeline,
		"Memory recall event: "+triggerType+" about "+topic)
	mem.Source = "memory_trigger"
	mem.Metadata = map[string]any{
		"trigger_type": triggerType,
		"topic":        topic,
	}

	if _, err := uc.memory.Store(ctx, userID, mem); err != nil {
		logging.From(ctx).Warn("failed to record recall event", "error", err)
	}
}

// capHistory keeps the most recent entries up to max
func capHistory(history []map[string]any, max int) []map[string]any {
	if max <= 0 || len(history) <= max {
		return history
	}
	return history[len(history)-max:]
}
