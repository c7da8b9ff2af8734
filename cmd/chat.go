package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jjenkins/volume/internal/model"
	"github.com/jjenkins/volume/internal/service"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk with the study assistant",
	Long: `Chat reads one question per line from stdin and prints the study
assistant's answer. The whole conversation is sent with every question.
Type "exit" or send EOF to stop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := newServices(ctx)
		if err != nil {
			return err
		}

		transcript, err := runChat(ctx, svc.assistant, cmd.InOrStdin(), cmd.OutOrStdout())
		logger.Debug("Chat finished", zap.Int("turns", len(transcript)))
		return err
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// runChat loops until EOF, "exit" or ctx is cancelled and returns the
// final transcript
func runChat(ctx context.Context, assistant *service.StudyAssistant, in io.Reader, out io.Writer) (model.Transcript, error) {
	var transcript model.Transcript
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return transcript, nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			return transcript, nil
		}
		if line != "" {
			transcript = assistant.Reply(ctx, transcript, line)
			fmt.Fprintf(out, "%s\n\n", transcript[len(transcript)-1].Text)
		}
		fmt.Fprint(out, "> ")
	}
	return transcript, scanner.Err()
}
