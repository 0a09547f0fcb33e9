package domain

type SessionStatus string

const (
	StatusNotStarted     SessionStatus = "Not Started"
	StatusPreparation    SessionStatus = "Preparation In Progress"
	StatusAwaitingReport SessionStatus = "Preparation Ended, Waiting Report"
	StatusReport         SessionStatus = "Post-Session Report In Progress"
	StatusEnded          SessionStatus = "Session Ended"
)

// sessionStatusOrder is the single source of truth for workflow progress.
// A session only ever moves forward through this sequence.
var sessionStatusOrder = []SessionStatus{
	StatusNotStarted,
	StatusPreparation,
	StatusAwaitingReport,
	StatusReport,
	StatusEnded,
}

// statusIndex returns the position of s in the workflow sequence,
// or -1 for an unknown status.
func statusIndex(s SessionStatus) int {
	for i, v := range sessionStatusOrder {
		if v == s {
			return i
		}
	}
	return -1
}

// IsValidSessionStatus returns true if s is one of the enumerated statuses.
func IsValidSessionStatus(s SessionStatus) bool {
	return statusIndex(s) >= 0
}

// IsTerminal returns true once a session has ended. No transition leaves
// the terminal state.
func (s SessionStatus) IsTerminal() bool {
	return s == StatusEnded
}

// CanTransition reports whether moving from one status to another is legal.
// Legal moves are strictly forward through the sequence; the terminal state
// admits nothing, and setting the same status again is not a transition.
func CanTransition(from, to SessionStatus) bool {
	fi, ti := statusIndex(from), statusIndex(to)
	if fi < 0 || ti < 0 {
		return false
	}
	if from.IsTerminal() {
		return false
	}
	return ti > fi
}

// NextStatuses returns the remaining forward choices from the given status.
// For a terminal session the only "choice" is the terminal status itself,
// which the presentation layer renders as a locked selection.
func NextStatuses(from SessionStatus) []SessionStatus {
	if from.IsTerminal() {
		return []SessionStatus{StatusEnded}
	}
	fi := statusIndex(from)
	if fi < 0 {
		return nil
	}
	out := make([]SessionStatus, 0, len(sessionStatusOrder)-fi)
	out = append(out, from)
	out = append(out, sessionStatusOrder[fi+1:]...)
	return out
}

type ProjectStatus string

const (
	ProjectActive ProjectStatus = "active"
	ProjectDone   ProjectStatus = "done"
)

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// FileScope identifies which pool a file belongs to for the purposes of
// the duplicate-name check and context gathering.
type FileScope string

const (
	ScopeSession FileScope = "session"
	ScopeProject FileScope = "project"
	ScopeGlobal  FileScope = "global"
)
