package conversation

import (
	"sync"

	"github.com/rex-ai/rex/pkg/config"
	"github.com/rex-ai/rex/pkg/model"
	"github.com/rex-ai/rex/pkg/usecase/memory"
)

// UseCase orchestrates conversation turns: it decides whether an input is a
// memory trigger or ordinary text, calls the memory UseCase accordingly and
// keeps per-(user, session) context for the process lifetime.
type UseCase struct {
	memory *memory.UseCase
	cfg    *config.Config

	mu       sync.Mutex
	sessions map[string]*SessionContext
}

// SessionContext is ephemeral conversational state, distinct from stored
// memories. It is created on first contact and mutated on every turn.
type SessionContext struct {
	UserID    string
	SessionID string
	StartTime string

	History               []map[string]any
	ActiveTopics          map[string]struct{}
	ActiveProjects        map[string]struct{}
	IdentifiedPreferences map[string]struct{}

	// LastInteraction is overwritten every turn
	LastInteraction *model.Interaction
}

// New creates a conversation UseCase instance
func New(mem *memory.UseCase, cfg *config.Config) *UseCase {
	if cfg == nil {
		cfg = config.Default()
	}
	return &UseCase{
		memory:   mem,
		cfg:      cfg,
		sessions: make(map[string]*SessionContext),
	}
}

// Session returns the context for a (user, session) pair, creating it on
// first contact
func (uc *UseCase) Session(userID, sessionID string) *SessionContext {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	key := userID + ":" + sessionID
	sess, ok := uc.sessions[key]
	if !ok {
		sess = &SessionContext{
			UserID:                userID,
			SessionID:             sessionID,
			StartTime:             model.Now(),
			ActiveTopics:          make(map[string]struct{}),
			ActiveProjects:        make(map[string]struct{}),
			IdentifiedPreferences: make(map[string]struct{}),
		}
		uc.sessions[key] = sess
	}
	return sess
}
