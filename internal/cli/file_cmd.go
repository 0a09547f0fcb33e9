package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/talbenari/coachflow/internal/cli/formatter"
	"github.com/talbenari/coachflow/internal/domain"
)

func newFileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage uploaded reference documents",
	}

	cmd.AddCommand(
		newFileUploadCmd(app),
		newFileListCmd(app),
		newFileRemoveCmd(app),
	)

	return cmd
}

func newFileUploadCmd(app *App) *cobra.Command {
	var sessionID, projectID int64
	var name string

	cmd := &cobra.Command{
		Use:   "upload PATH",
		Short: "Upload a PDF to a session, project, or the global pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sessionID != 0 && projectID != 0 {
				return fmt.Errorf("choose at most one of --session and --project")
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}
			if name == "" {
				name = filepath.Base(args[0])
			}

			f := &domain.File{SessionID: sessionID, ProjectID: projectID, DisplayName: name}
			if err := app.Files.Upload(context.Background(), f, data); err != nil {
				return err
			}
			fmt.Printf("Uploaded %s (id %d, %s pool)\n", f.DisplayName, f.ID, f.Scope())
			return nil
		},
	}

	cmd.Flags().Int64Var(&sessionID, "session", 0, "Attach to this session")
	cmd.Flags().Int64Var(&projectID, "project", 0, "Attach to this project")
	cmd.Flags().StringVar(&name, "name", "", "Display name (defaults to the file name)")

	return cmd
}

func newFileListCmd(app *App) *cobra.Command {
	var sessionID, projectID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List files in a pool (global without flags)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var files []*domain.File
			var title string
			var err error
			switch {
			case sessionID != 0:
				title = fmt.Sprintf("Session %d files", sessionID)
				files, err = app.Files.ListSession(ctx, sessionID)
			case projectID != 0:
				title = fmt.Sprintf("Project %d files", projectID)
				files, err = app.Files.ListProject(ctx, projectID)
			default:
				title = "Global files"
				files, err = app.Files.ListGlobal(ctx)
			}
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println("No files found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatFileList(title, files))
			return nil
		},
	}

	cmd.Flags().Int64Var(&sessionID, "session", 0, "List this session's files")
	cmd.Flags().Int64Var(&projectID, "project", 0, "List this project's files")

	return cmd
}

func newFileRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete an uploaded file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return fmt.Errorf("invalid file ID %q", args[0])
			}
			if err := app.Files.Delete(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Removed file %d\n", id)
			return nil
		},
	}
}
