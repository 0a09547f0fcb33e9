package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/talbenari/coachflow/internal/domain"
)

// FormatProjectList renders a styled project table inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "STATUS", "CREATED"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		rows = append(rows, []string{
			Dim(strconv.FormatInt(p.ID, 10)),
			Bold(p.Name),
			StatusPill(p.Status),
			Dim(HumanDate(p.CreatedAt)),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectDetail renders one project's metadata, goal, aggregated
// summary, and its session workflow.
func FormatProjectDetail(p *domain.Project, sessions []*domain.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(p.Name), StatusPill(p.Status))
	fmt.Fprintf(&b, "%s %s\n", Dim("Created"), HumanDate(p.CreatedAt))

	b.WriteString("\n" + Header("Goal") + "\n")
	if strings.TrimSpace(p.Goal) == "" {
		b.WriteString(Dim("Not set; generated when the kickoff session ends.") + "\n")
	} else {
		b.WriteString(p.Goal + "\n")
	}

	b.WriteString("\n" + Header("Project Summary") + "\n")
	if strings.TrimSpace(p.AggregatedSummary) == "" {
		b.WriteString(Dim("No sessions summarized yet.") + "\n")
	} else {
		b.WriteString(p.AggregatedSummary + "\n")
	}

	if len(sessions) > 0 {
		b.WriteString("\n" + Header("Sessions") + "\n")
		b.WriteString(FormatSessionTable(sessions))
	}

	return RenderBox("Project "+strconv.FormatInt(p.ID, 10), b.String())
}
