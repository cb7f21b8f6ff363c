package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type MemoryID string

// NewMemoryID generates a new unique MemoryID
func NewMemoryID() MemoryID {
	return MemoryID(uuid.New().String())
}

// MemoryCategory is the closed set of categories a memory can belong to.
// The set is fixed; there are no dynamic categories.
type MemoryCategory string

const (
	CategoryTopics      MemoryCategory = "topics"
	CategoryPeople      MemoryCategory = "people"
	CategoryThings      MemoryCategory = "things"
	CategoryProjects    MemoryCategory = "projects"
	CategoryPreferences MemoryCategory = "preferences"
	CategoryTimeline    MemoryCategory = "timeline"
)

// Categories returns all memory categories in canonical order.
// Retrieval collects candidates in this order, which makes it the
// tie-break order for equal similarity scores across categories.
func Categories() []MemoryCategory {
	return []MemoryCategory{
		CategoryTopics,
		CategoryPeople,
		CategoryThings,
		CategoryProjects,
		CategoryPreferences,
		CategoryTimeline,
	}
}

// ParseCategory converts a string tag into a MemoryCategory
func ParseCategory(s string) (MemoryCategory, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", goerr.New("unknown memory category", goerr.V("category", s))
}

// Memory is the atomic unit of stored knowledge. ID, Category and Source are
// immutable after creation. Embedding is assigned once when the memory is
// stored; RelevanceScore is transient and recomputed on every retrieval.
type Memory struct {
	ID        MemoryID       `json:"id"`
	Category  MemoryCategory `json:"category"`
	Content   string         `json:"content"`
	Source    string         `json:"source"`
	Metadata  map[string]any `json:"metadata"`
	Timestamp string         `json:"timestamp"`

	// Embedding is excluded from all serialization surfaces
	Embedding []float32 `json:"-"`

	RelevanceScore float64 `json:"-"`
}

// NewMemory creates a memory with a generated ID and the default source.
// Timestamp is left empty and assigned by the store if never set.
func NewMemory(category MemoryCategory, content string) *Memory {
	return &Memory{
		ID:       NewMemoryID(),
		Category: category,
		Content:  content,
		Source:   "conversation",
		Metadata: map[string]any{},
	}
}

// ToMap projects the memory to its transport representation.
// The embedding vector is deliberately excluded.
func (m *Memory) ToMap() map[string]any {
	metadata := m.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	return map[string]any{
		"id":        string(m.ID),
		"category":  string(m.Category),
		"content":   m.Content,
		"source":    m.Source,
		"metadata":  metadata,
		"timestamp": m.Timestamp,
	}
}

// MemoryFromMap reconstructs a memory from its transport representation.
// category and content are required; everything else has defaults.
func MemoryFromMap(data map[string]any) (*Memory, error) {
	rawCategory, ok := data["category"].(string)
	if !ok {
		return nil, goerr.New("memory data missing category")
	}
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return nil, err
	}

	content, ok := data["content"].(string)
	if !ok {
		return nil, goerr.New("memory data missing content")
	}

	mem := NewMemory(category, content)
	if id, ok := data["id"].(string); ok && id != "" {
		mem.ID = MemoryID(id)
	}
	if source, ok := data["source"].(string); ok && source != "" {
		mem.Source = source
	}
	if metadata, ok := data["metadata"].(map[string]any); ok {
		mem.Metadata = metadata
	}
	if timestamp, ok := data["timestamp"].(string); ok {
		mem.Timestamp = timestamp
	}

	return mem, nil
}

// Now returns the current time in the timestamp format used by memories
func Now() string {
	return time.Now().Format(time.RFC3339)
}
