package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/talbenari/coachflow/internal/cli/formatter"
)

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk with the coaching assistant inside a session",
	}

	cmd.AddCommand(
		newChatSendCmd(app),
		newChatAudioCmd(app),
		newChatHistoryCmd(app),
	)

	return cmd
}

func newChatSendCmd(app *App) *cobra.Command {
	var sessionID int64

	cmd := &cobra.Command{
		Use:   "send MESSAGE...",
		Short: "Send a message and print the assistant's reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			reply, err := app.Chat.Send(context.Background(), sessionID, text)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n%s\n", formatter.Bold("coach"), reply)
			return nil
		},
	}

	cmd.Flags().Int64Var(&sessionID, "session", 0, "Session ID")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func newChatAudioCmd(app *App) *cobra.Command {
	var sessionID int64

	cmd := &cobra.Command{
		Use:   "audio FILE",
		Short: "Transcribe a recording and send it as a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audio, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading audio file: %w", err)
			}
			reply, err := app.Chat.SendAudio(context.Background(), sessionID, audio)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n%s\n", formatter.Bold("coach"), reply)
			return nil
		},
	}

	cmd.Flags().Int64Var(&sessionID, "session", 0, "Session ID")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func newChatHistoryCmd(app *App) *cobra.Command {
	var sessionID int64

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show a session's conversation",
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := app.Chat.History(context.Background(), sessionID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatTranscript(messages))
			return nil
		},
	}

	cmd.Flags().Int64Var(&sessionID, "session", 0, "Session ID")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}
