package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/talbenari/coachflow/internal/cli/formatter"
)

func newPromptsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Inspect and edit the assistant's prompt configuration",
	}

	cmd.AddCommand(
		newPromptsShowCmd(app),
		newPromptsSetCmd(app),
	)

	return cmd
}

func promptRow(label, value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{label, formatter.Dim("(default)")}
	}
	return []string{label, formatter.Truncate(value, 60)}
}

func newPromptsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Prompts.Get(context.Background())
			if err != nil {
				return err
			}

			rows := [][]string{
				promptRow("assistant", cfg.AssistantPrompt),
				promptRow("file-upload", cfg.FileUploadPrompt),
				promptRow("session-summarization", cfg.SessionSummarizationPrompt),
				promptRow("goals", cfg.GoalsPrompt),
				promptRow("project-summarization", cfg.ProjectSummarizationPrompt),
			}
			fmt.Printf("%s\n", formatter.RenderBox("Prompts", formatter.RenderTable([]string{"PROMPT", "VALUE"}, rows)))
			return nil
		},
	}
}

func newPromptsSetCmd(app *App) *cobra.Command {
	var assistant, fileUpload, sessionSum, goals, projectSum string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update prompt fields (unset flags are left unchanged)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := app.Prompts.Get(ctx)
			if err != nil {
				return err
			}

			apply := func(flag string, target *string, value string) {
				if cmd.Flags().Changed(flag) {
					*target = value
				}
			}
			apply("assistant", &cfg.AssistantPrompt, assistant)
			apply("file-upload", &cfg.FileUploadPrompt, fileUpload)
			apply("session-summarization", &cfg.SessionSummarizationPrompt, sessionSum)
			apply("goals", &cfg.GoalsPrompt, goals)
			apply("project-summarization", &cfg.ProjectSummarizationPrompt, projectSum)

			if err := app.Prompts.Update(ctx, cfg); err != nil {
				return err
			}
			fmt.Println("Prompts updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&assistant, "assistant", "", "System prompt for interactive chat")
	cmd.Flags().StringVar(&fileUpload, "file-upload", "", "Preamble for uploaded document context")
	cmd.Flags().StringVar(&sessionSum, "session-summarization", "", "Session summarization prompt")
	cmd.Flags().StringVar(&goals, "goals", "", "Project goal generation prompt")
	cmd.Flags().StringVar(&projectSum, "project-summarization", "", "Project aggregation prompt")

	return cmd
}
