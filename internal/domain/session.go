package domain

import (
	"fmt"
	"time"
)

type Session struct {
	ID            int64
	ProjectID     int64
	SessionNumber int
	SessionName   string
	Status        SessionStatus
	Summary       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsKickoff reports whether this is the first session of its project.
// Ending the kickoff session is what triggers project goal generation.
func (s *Session) IsKickoff() bool {
	return s.SessionNumber == 1
}

// DisplayName returns the template label, falling back to a numbered name.
func (s *Session) DisplayName() string {
	if s.SessionName != "" {
		return s.SessionName
	}
	return fmt.Sprintf("Session %d", s.SessionNumber)
}

// SessionTemplateEntry is one slot in the fixed per-project workflow.
type SessionTemplateEntry struct {
	Number int
	Name   string
}

// DefaultSessionTemplate returns the fixed 22-step coaching workflow every
// project is created with: a kickoff, ten preparation/report pairs, and a
// closure. Order is significant; Number is the 1-based position.
func DefaultSessionTemplate() []SessionTemplateEntry {
	entries := make([]SessionTemplateEntry, 0, 22)
	entries = append(entries, SessionTemplateEntry{Number: 1, Name: "Project Kickoff"})
	for i := 1; i <= 10; i++ {
		entries = append(entries,
			SessionTemplateEntry{Number: len(entries) + 1, Name: fmt.Sprintf("Preparation %d", i)},
			SessionTemplateEntry{Number: len(entries) + 2, Name: fmt.Sprintf("Post-Session Report %d", i)},
		)
	}
	entries = append(entries, SessionTemplateEntry{Number: 22, Name: "Project Closure"})
	return entries
}
