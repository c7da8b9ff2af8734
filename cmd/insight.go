package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jjenkins/volume/internal/reference"
	"github.com/jjenkins/volume/internal/service"
)

var insightCmd = &cobra.Command{
	Use:     "insight <book> <chapter> <verse>",
	Short:   "Explain one verse in the context of its chapter",
	Example: `  ./volume insight John 3 16`,
	Args:    cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		last := len(args) - 1
		number, err := strconv.Atoi(args[last])
		if err != nil {
			return fmt.Errorf("invalid verse %q", args[last])
		}
		book, chapter, err := chapterArgs(args[:last])
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := newServices(ctx)
		if err != nil {
			return err
		}

		ch, err := svc.scripture.GetChapter(ctx, book.Name, chapter)
		if err != nil {
			return fmt.Errorf("failed to load %s %d: %w", book.Name, chapter, err)
		}

		for _, v := range ch.Verses {
			if v.Verse != number {
				continue
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s  %s\n\n", reference.Cite(book.Name, chapter, number), v.Text)
			fmt.Fprintln(w, svc.insights.Insight(ctx, v, service.ReadingContext(book.Name, chapter)))
			return nil
		}
		return fmt.Errorf("%s %d has no verse %d", book.Name, chapter, number)
	},
}

func init() {
	rootCmd.AddCommand(insightCmd)
}
