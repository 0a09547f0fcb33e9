// Package assembler builds the ordered message lists sent to the language
// model: the full conversational context for interactive chat turns, and
// single-purpose one-shot prompts for summarization-style calls.
package assembler

import (
	"fmt"
	"strings"

	"github.com/talbenari/coachflow/internal/domain"
	"github.com/talbenari/coachflow/internal/extract"
	"github.com/talbenari/coachflow/internal/llm"
)

// documentSeparator is placed between extracted documents so the model can
// tell where one ends and the next begins.
const documentSeparator = "\n---\n"

// pdfPreamble introduces extracted document text when no file_upload_prompt
// is configured. Extracted text is never silently dropped.
const pdfPreamble = "Here are the contents of the uploaded PDFs to consider when responding:"

// Assembler combines prompts, extracted document text, and conversation
// history into role-tagged message lists. Prompt configuration is passed in
// per call; the assembler holds no mutable state.
type Assembler struct {
	extractor extract.TextExtractor
}

// New creates an Assembler using the given text extractor.
func New(extractor extract.TextExtractor) *Assembler {
	return &Assembler{extractor: extractor}
}

// Chat builds the context for one interactive turn. The list is constructed
// directly in its final order: the assistant prompt (when configured), then
// the document context (when any text was extracted), then the stored
// history, then the new user message.
func (a *Assembler) Chat(history []*domain.Message, newMessage string, pdfPaths []string, prompts domain.PromptConfig) []llm.ChatMessage {
	msgs := make([]llm.ChatMessage, 0, len(history)+3)

	if p := strings.TrimSpace(prompts.AssistantPrompt); p != "" {
		msgs = append(msgs, llm.ChatMessage{Role: llm.RoleSystem, Content: p})
	}
	if entry, ok := a.documentContext(pdfPaths, prompts); ok {
		msgs = append(msgs, entry)
	}
	for _, m := range history {
		role := llm.RoleAssistant
		if m.Sender == domain.SenderUser {
			role = llm.RoleUser
		}
		msgs = append(msgs, llm.ChatMessage{Role: role, Content: m.Content})
	}
	msgs = append(msgs, llm.ChatMessage{Role: llm.RoleUser, Content: newMessage})

	return msgs
}

// OneShot builds the context for a single-purpose prompt (summarization,
// goal extraction, aggregation). It never replays conversation history and
// never injects the assistant prompt; document context follows the same
// injection rule as Chat when paths are supplied.
func (a *Assembler) OneShot(prompt string, pdfPaths []string, prompts domain.PromptConfig) []llm.ChatMessage {
	msgs := make([]llm.ChatMessage, 0, 2)
	if entry, ok := a.documentContext(pdfPaths, prompts); ok {
		msgs = append(msgs, entry)
	}
	msgs = append(msgs, llm.ChatMessage{Role: llm.RoleUser, Content: prompt})
	return msgs
}

// RenderHistory renders stored messages as "{sender}: {content}" lines in
// conversation order, the form fed to session summarization.
func RenderHistory(history []*domain.Message) string {
	lines := make([]string, 0, len(history))
	for _, m := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Sender, m.Content))
	}
	return strings.Join(lines, "\n")
}

// documentContext extracts text from the given paths and wraps it in a
// system entry. The entry exists whenever any non-blank text was extracted,
// even with no file_upload_prompt configured; conversely a configured
// prompt alone, with no extracted text, produces nothing.
func (a *Assembler) documentContext(pdfPaths []string, prompts domain.PromptConfig) (llm.ChatMessage, bool) {
	var texts []string
	for _, path := range pdfPaths {
		if t := strings.TrimSpace(a.extractor.ExtractText(path)); t != "" {
			texts = append(texts, t)
		}
	}
	if len(texts) == 0 {
		return llm.ChatMessage{}, false
	}

	preamble := strings.TrimSpace(prompts.FileUploadPrompt)
	if preamble == "" {
		preamble = pdfPreamble
	}
	content := preamble + "\n\n" + strings.Join(texts, documentSeparator)
	return llm.ChatMessage{Role: llm.RoleSystem, Content: content}, true
}
