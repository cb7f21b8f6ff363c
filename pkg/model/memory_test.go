package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/rex-ai/rex/pkg/model"
)

func TestNewMemory(t *testing.T) {
	mem := model.NewMemory(model.CategoryTopics, "Go is a programming language")

	gt.V(t, mem.ID).NotEqual("")
	gt.Equal(t, mem.Category, model.CategoryTopics)
	gt.Equal(t, mem.Source, "conversation")
	gt.Equal(t, mem.Timestamp, "")
}

func TestParseCategory(t *testing.T) {
	for _, category := range model.Categories() {
		parsed, err := model.ParseCategory(string(category))
		gt.NoError(t, err)
		gt.Equal(t, parsed, category)
	}

	_, err := model.ParseCategory("feelings")
	gt.Error(t, err)
}

func TestToMapExcludesEmbedding(t *testing.T) {
	mem := model.NewMemory(model.CategoryPeople, "Person: Grace Hopper")
	mem.Embedding = []float32{0.1, 0.2}
	mem.Timestamp = "2025-01-01T00:00:00Z"

	data := mem.ToMap()

	gt.Equal(t, data["id"], any(string(mem.ID)))
	gt.Equal(t, data["category"], "people")
	gt.Equal(t, data["content"], "Person: Grace Hopper")
	gt.Equal(t, data["timestamp"], "2025-01-01T00:00:00Z")

	_, hasEmbedding := data["embedding"]
	gt.Equal(t, hasEmbedding, false)
}

func TestMemoryFromMap(t *testing.T) {
	t.Run("minimal fields use defaults", func(t *testing.T) {
		mem, err := model.MemoryFromMap(map[string]any{
			"category": "preferences",
			"content":  "Preference: I prefer tea",
		})
		gt.NoError(t, err)
		gt.Equal(t, mem.Category, model.CategoryPreferences)
		gt.Equal(t, mem.Source, "conversation")
		gt.V(t, mem.ID).NotEqual("")
		gt.Equal(t, len(mem.Metadata), 0)
	})

	t.Run("all fields preserved", func(t *testing.T) {
		mem, err := model.MemoryFromMap(map[string]any{
			"id":        "mem-1",
			"category":  "projects",
			"content":   "Web scraping project",
			"source":    "trigger",
			"metadata":  map[string]any{"k": "v"},
			"timestamp": "2025-06-01T12:00:00Z",
		})
		gt.NoError(t, err)
		gt.Equal(t, mem.ID, model.MemoryID("mem-1"))
		gt.Equal(t, mem.Source, "trigger")
		gt.Equal(t, mem.Metadata["k"], "v")
		gt.Equal(t, mem.Timestamp, "2025-06-01T12:00:00Z")
	})

	t.Run("missing category fails", func(t *testing.T) {
		_, err := model.MemoryFromMap(map[string]any{"content": "orphan"})
		gt.Error(t, err)
	})

	t.Run("missing content fails", func(t *testing.T) {
		_, err := model.MemoryFromMap(map[string]any{"category": "topics"})
		gt.Error(t, err)
	})
}

func TestRecallResultSubject(t *testing.T) {
	gt.Equal(t, (&model.RecallResult{Topic: "Python"}).Subject(), "Python")
	gt.Equal(t, (&model.RecallResult{Project: "web scraper"}).Subject(), "web scraper")
	gt.Equal(t, (&model.RecallResult{Query: "anything"}).Subject(), "anything")
	gt.Equal(t, (&model.RecallResult{}).Subject(), "")
}
