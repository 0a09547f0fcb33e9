package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/talbenari/coachflow/internal/cli/formatter"
	"github.com/talbenari/coachflow/internal/domain"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage coaching projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectDoneCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name string
	var userID int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a project with its full session workflow",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{UserID: userID, Name: name}
			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created project %s (id %d) with %d sessions\n", p.Name, p.ID, len(domain.DefaultSessionTemplate()))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().Int64Var(&userID, "user", 0, "Owning user ID")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.ListForUser(context.Background(), userID)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "Owning user ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show a project's goal, summary, and session workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}
			p, err := app.Projects.GetByID(ctx, id)
			if err != nil {
				return err
			}
			sessions, err := app.Sessions.ListForProject(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProjectDetail(p, sessions))
			return nil
		},
	}
}

func newProjectDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a project as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}
			if err := app.Projects.MarkDone(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Project %d marked done\n", id)
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a project and all its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID %q", args[0])
			}
			if err := app.Projects.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed project %d\n", id)
			return nil
		},
	}
}
