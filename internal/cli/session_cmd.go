package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/talbenari/coachflow/internal/cli/formatter"
	"github.com/talbenari/coachflow/internal/domain"
)

// statusAliases maps short command-line names to workflow statuses.
var statusAliases = map[string]domain.SessionStatus{
	"not-started":     domain.StatusNotStarted,
	"preparation":     domain.StatusPreparation,
	"awaiting-report": domain.StatusAwaitingReport,
	"report":          domain.StatusReport,
	"ended":           domain.StatusEnded,
}

func parseSessionStatus(input string) (domain.SessionStatus, error) {
	if s, ok := statusAliases[strings.ToLower(input)]; ok {
		return s, nil
	}
	// Accept the full display string too.
	if s := domain.SessionStatus(input); domain.IsValidSessionStatus(s) {
		return s, nil
	}
	keys := make([]string, 0, len(statusAliases))
	for k := range statusAliases {
		keys = append(keys, k)
	}
	return "", fmt.Errorf("unknown status %q (one of: %s)", input, strings.Join(keys, ", "))
}

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Work a project's session workflow",
	}

	cmd.AddCommand(
		newSessionListCmd(app),
		newSessionInspectCmd(app),
		newSessionStatusCmd(app),
		newSessionSummarizeCmd(app),
	)

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListForProject(context.Background(), projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.RenderBox("Sessions", formatter.FormatSessionTable(sessions)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectID, "project", 0, "Project ID")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func newSessionInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a session's status, summary, and next moves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid session ID %q", args[0])
			}
			s, err := app.Sessions.GetByID(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatSessionDetail(s))
			return nil
		},
	}
}

func newSessionStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Advance a session's workflow status",
		Long: "Advance a session's workflow status. The workflow only moves forward; " +
			"ending a session summarizes it and refreshes the project summary.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid session ID %q", args[0])
			}
			status, err := parseSessionStatus(args[1])
			if err != nil {
				return err
			}
			if err := app.Sessions.SetStatus(ctx, id, status); err != nil {
				return err
			}
			s, err := app.Sessions.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", s.DisplayName(), formatter.SessionStatusPill(s.Status))
			return nil
		},
	}
}

func newSessionSummarizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize ID",
		Short: "Re-run summarization for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid session ID %q", args[0])
			}
			if err := app.Sessions.Summarize(ctx, id); err != nil {
				return err
			}
			s, err := app.Sessions.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatSessionDetail(s))
			return nil
		},
	}
}
