package domain

import "strings"

// PromptConfig holds the five operator-editable template strings driving
// the language model calls. It is a process-wide singleton row, created
// empty on first read and mutated only through the admin surface. Services
// load it fresh from persistence per operation rather than caching it.
type PromptConfig struct {
	AssistantPrompt            string
	FileUploadPrompt           string
	ProjectSummarizationPrompt string
	GoalsPrompt                string
	SessionSummarizationPrompt string
	UpdatedAt                  string
}

// Fallback prompt texts used when the corresponding configured field is blank.
const (
	DefaultSessionSummarizationPrompt = "Summarize the conversation as briefly as possible, in the same language as the conversation."
	DefaultGoalsPrompt                = "Derive the key goals of this project from the kickoff session summary below. Answer briefly, in the same language as the summary."
	DefaultProjectSummarizationPrompt = "Merge the session summaries below into one short project summary, in the same language, without repeating yourself."
)

// SessionSummarization returns the configured prompt or its fallback.
func (c PromptConfig) SessionSummarization() string {
	if t := strings.TrimSpace(c.SessionSummarizationPrompt); t != "" {
		return t
	}
	return DefaultSessionSummarizationPrompt
}

// Goals returns the configured prompt or its fallback.
func (c PromptConfig) Goals() string {
	if t := strings.TrimSpace(c.GoalsPrompt); t != "" {
		return t
	}
	return DefaultGoalsPrompt
}

// ProjectSummarization returns the configured prompt or its fallback.
func (c PromptConfig) ProjectSummarization() string {
	if t := strings.TrimSpace(c.ProjectSummarizationPrompt); t != "" {
		return t
	}
	return DefaultProjectSummarizationPrompt
}
