package memory

import (
	"context"

	"github.com/rex-ai/rex/pkg/extract"
	"github.com/rex-ai/rex/pkg/model"
)

// ExtractAndStore scans text for people, topics and preference phrases and
// stores a memory for each finding. It returns the IDs of every memory
// created; text with no detectable entities yields an empty list.
func (uc *UseCase) ExtractAndStore(ctx context.Context, userID, text string, tctx map[string]any) ([]model.MemoryID, error) {
	source := "conversation"
	if s, ok := tctx["source"].(string); ok && s != "" {
		source = s
	}
	excerpt := excerptOf(text)

	var ids []model.MemoryID
	store := func(category model.MemoryCategory, content string) error {
		mem := model.NewMemory(category, content)
		mem.Source = source
		mem.Metadata = map[string]any{"extracted_from": excerpt}

		id, err := uc.Store(ctx, userID, mem)
		if err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	}

	entities := extract.ExtractEntities(text)

	for _, person := range entities.People {
		if err := store(model.CategoryPeople, "Person: "+person); err != nil {
			return ids, err
		}
	}

	for _, topic := range entities.Topics {
		if err := store(model.CategoryTopics, "Topic: "+topic); err != nil {
			return ids, err
		}
	}

	for _, pref := range extract.ExtractPreferences(text) {
		if err := store(model.CategoryPreferences, "Preference: "+pref); err != nil {
			return ids, err
		}
	}

	return ids, nil
}

// excerptOf truncates source text for provenance metadata
func excerptOf(text string) string {
	runes := []rune(text)
	if len(runes) > 100 {
		runes = runes[:100]
	}
	return string(runes) + "..."
}
