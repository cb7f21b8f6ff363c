package model

// ConversationInput is a single turn submitted by a caller
type ConversationInput struct {
	UserID              string           `json:"user_id"`
	SessionID           string           `json:"session_id"`
	UserInput           string           `json:"user_input"`
	ConversationHistory []map[string]any `json:"conversation_history,omitempty"`
}

// ConversationResponse is the assembled reply for one turn
type ConversationResponse struct {
	AIResponse   string         `json:"ai_response"`
	UsedMemories []MemoryID     `json:"used_memories"`
	Metadata     map[string]any `json:"metadata"`
}

// Interaction is a snapshot of the last exchange in a session
type Interaction struct {
	UserInput  string `json:"user_input"`
	AIResponse string `json:"ai_response"`
	Timestamp  string `json:"timestamp"`
}
