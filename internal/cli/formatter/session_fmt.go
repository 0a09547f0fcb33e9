package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/talbenari/coachflow/internal/domain"
)

// FormatSessionTable renders the workflow sessions as an aligned table.
func FormatSessionTable(sessions []*domain.Session) string {
	headers := []string{"ID", "#", "SESSION", "STATUS", "SUMMARY"}
	rows := make([][]string, 0, len(sessions))

	for _, s := range sessions {
		summary := Dim("--")
		if strings.TrimSpace(s.Summary) != "" {
			summary = Truncate(s.Summary, 40)
		}
		rows = append(rows, []string{
			Dim(strconv.FormatInt(s.ID, 10)),
			strconv.Itoa(s.SessionNumber),
			Bold(s.DisplayName()),
			SessionStatusPill(s.Status),
			summary,
		})
	}

	return RenderTable(headers, rows)
}

// FormatSessionDetail renders one session with its summary and the forward
// moves still available from its current stage.
func FormatSessionDetail(s *domain.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(s.DisplayName()), SessionStatusPill(s.Status))
	fmt.Fprintf(&b, "%s %d of project %d\n", Dim("Session"), s.SessionNumber, s.ProjectID)

	b.WriteString("\n" + Header("Summary") + "\n")
	if strings.TrimSpace(s.Summary) == "" {
		b.WriteString(Dim("Not yet summarized.") + "\n")
	} else {
		b.WriteString(s.Summary + "\n")
	}

	next := domain.NextStatuses(s.Status)
	if !s.Status.IsTerminal() && len(next) > 1 {
		b.WriteString("\n" + Header("Next") + "\n")
		labels := make([]string, 0, len(next)-1)
		for _, st := range next[1:] {
			labels = append(labels, string(st))
		}
		b.WriteString(Dim(strings.Join(labels, " → ")) + "\n")
	}

	return RenderBox("Session "+strconv.FormatInt(s.ID, 10), b.String())
}

// FormatTranscript renders a chat history as labeled speaker turns.
func FormatTranscript(messages []*domain.Message) string {
	if len(messages) == 0 {
		return Dim("No messages yet.")
	}

	var b strings.Builder
	for _, m := range messages {
		fmt.Fprintf(&b, "%s  %s\n%s\n\n", SenderLabel(m.Sender), Dim(HumanTimestamp(m.CreatedAt)), m.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}
