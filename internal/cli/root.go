// Package cli implements the coachflow command tree. Commands are thin:
// they parse flags, call services, and print formatted results.
package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/talbenari/coachflow/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Users    service.UserService
	Projects service.ProjectService
	Sessions service.SessionService
	Chat     service.ChatService
	Files    service.FileService
	Prompts  service.PromptService
}

// NewRootCmd creates the top-level "coachflow" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "coachflow",
		Short:         "Coaching project workflow and session assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newProjectCmd(app),
		newSessionCmd(app),
		newChatCmd(app),
		newFileCmd(app),
		newPromptsCmd(app),
		newUserCmd(app),
	)

	return root
}

// parseID parses a numeric command-line identifier.
func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}
