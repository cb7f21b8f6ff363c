package archive

import (
	"context"
	"fmt"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	chromem "github.com/philippgille/chromem-go"

	"github.com/rex-ai/rex/pkg/model"
)

// Archive mirrors stored memories into a chromem-go vector database so they
// survive process restarts and can be searched independently of the
// in-process store. It is write-through and best-effort: canonical storage
// and ranking stay with the repository.
type Archive struct {
	db          *chromem.DB
	mu          sync.Mutex
	collections map[string]*chromem.Collection
}

// Result is a single archive search hit
type Result struct {
	ID         string         `json:"id"`
	Content    string         `json:"content"`
	Similarity float32        `json:"similarity"`
	Metadata   map[string]any `json:"metadata"`
}

// NewPersistent opens (or creates) an archive at the given path
func NewPersistent(path string) (*Archive, error) {
	db, err := chromem.NewPersistentDB(path, false)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open archive database", goerr.V("path", path))
	}

	return &Archive{
		db:          db,
		collections: make(map[string]*chromem.Collection),
	}, nil
}

// NewEphemeral creates an in-memory archive, used by tests
func NewEphemeral() *Archive {
	return &Archive{
		db:          chromem.NewDB(),
		collections: make(map[string]*chromem.Collection),
	}
}

func (a *Archive) collection(userID string) (*chromem.Collection, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if col, ok := a.collections[userID]; ok {
		return col, nil
	}

	col, err := a.db.GetOrCreateCollection(fmt.Sprintf("user_%s", userID), nil, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create archive collection", goerr.V("user_id", userID))
	}

	a.collections[userID] = col
	return col, nil
}

// Add archives one memory. Memories without a usable embedding are skipped:
// chromem cannot index an empty vector, and normalizing a zero vector (the
// degraded output of a failed embedding provider) yields NaN components that
// poison later searches.
func (a *Archive) Add(ctx context.Context, userID string, mem *model.Memory) error {
	if !indexable(mem.Embedding) {
		return nil
	}

	col, err := a.collection(userID)
	if err != nil {
		return err
	}

	doc := chromem.Document{
		ID:        string(mem.ID),
		Content:   mem.Content,
		Embedding: mem.Embedding,
		Metadata: map[string]string{
			"category":  string(mem.Category),
			"source":    mem.Source,
			"timestamp": mem.Timestamp,
		},
	}

	if err := col.AddDocument(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to archive memory", goerr.V("memory_id", mem.ID))
	}
	return nil
}

// indexable reports whether the vector is non-empty with a nonzero norm
func indexable(vec []float32) bool {
	for _, v := range vec {
		if v != 0 {
			return true
		}
	}
	return false
}

// Search runs a similarity query against a user's archived memories
func (a *Archive) Search(ctx context.Context, userID string, embedding []float32, limit int) ([]Result, error) {
	col, err := a.collection(userID)
	if err != nil {
		return nil, err
	}

	// chromem rejects queries asking for more results than stored documents
	if count := col.Count(); limit > count {
		limit = count
	}
	if limit <= 0 {
		return nil, nil
	}

	hits, err := col.QueryEmbedding(ctx, embedding, limit, nil, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "archive query failed", goerr.V("user_id", userID))
	}

	results := make([]Result, 0, len(hits))
	for _, hit := range hits {
		metadata := make(map[string]any, len(hit.Metadata))
		for k, v := range hit.Metadata {
			metadata[k] = v
		}
		results = append(results, Result{
			ID:         hit.ID,
			Content:    hit.Content,
			Similarity: hit.Similarity,
			Metadata:   metadata,
		})
	}
	return results, nil
}
