package model

// TriggerType identifies which recall branch handled a trigger phrase
type TriggerType string

const (
	TriggerRecall        TriggerType = "recall"
	TriggerRememberTopic TriggerType = "remember_discussion"
	TriggerWhatDidWeSay  TriggerType = "what_did_we_say"
	TriggerProjectUpdate TriggerType = "project_update"
	TriggerGeneral       TriggerType = "general"
)

// RecallResult is the structured outcome of a memory trigger phrase.
// A malformed phrase produces a result with Error set; it is never
// surfaced as a Go error. Topic, Project and Query are mutually
// exclusive echoes of the text following the matched keyword, with
// original casing preserved.
type RecallResult struct {
	TriggerType TriggerType      `json:"trigger_type,omitempty"`
	Topic       string           `json:"topic,omitempty"`
	Project     string           `json:"project,omitempty"`
	Query       string           `json:"query,omitempty"`
	Memories    []map[string]any `json:"memories,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// Subject returns whichever of topic, project or query the result carries
func (r *RecallResult) Subject() string {
	switch {
	case r.Topic != "":
		return r.Topic
	case r.Project != "":
		return r.Project
	default:
		return r.Query
	}
}
