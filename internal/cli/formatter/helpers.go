package formatter

import (
	"fmt"
	"time"

	"github.com/talbenari/coachflow/internal/domain"
)

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectActive:
		return StyleGreen.Render("● Active")
	case domain.ProjectDone:
		return StyleDim.Render("✔ Done")
	default:
		return StyleDim.Render(string(status))
	}
}

// SessionStatusPill returns a colored indicator for a session's workflow
// stage. The progression runs blue → green → yellow → purple → dim.
func SessionStatusPill(status domain.SessionStatus) string {
	switch status {
	case domain.StatusNotStarted:
		return StyleBlue.Render("○ " + string(status))
	case domain.StatusPreparation:
		return StyleGreen.Render("● " + string(status))
	case domain.StatusAwaitingReport:
		return StyleYellow.Render("◐ " + string(status))
	case domain.StatusReport:
		return StylePurple.Render("● " + string(status))
	case domain.StatusEnded:
		return StyleDim.Render("✔ " + string(status))
	default:
		return StyleDim.Render(string(status))
	}
}

// SenderLabel returns a colored speaker label for a chat transcript line.
func SenderLabel(sender domain.Sender) string {
	if sender == domain.SenderUser {
		return StyleBlue.Render("you")
	}
	return StyleGreen.Render("coach")
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	diff := time.Since(t)
	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// Truncate shortens text to max runes, appending an ellipsis when cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
