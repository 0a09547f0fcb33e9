package formatter

import (
	"strconv"

	"github.com/talbenari/coachflow/internal/domain"
)

// FormatFileList renders uploaded files for one pool.
func FormatFileList(title string, files []*domain.File) string {
	headers := []string{"ID", "NAME", "SCOPE", "UPLOADED"}
	rows := make([][]string, 0, len(files))

	for _, f := range files {
		rows = append(rows, []string{
			Dim(strconv.FormatInt(f.ID, 10)),
			Bold(f.DisplayName),
			StylePurple.Render(string(f.Scope())),
			Dim(HumanTimestamp(f.CreatedAt)),
		})
	}

	return RenderBox(title, RenderTable(headers, rows))
}
