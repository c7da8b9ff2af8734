package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jjenkins/volume/internal/model"
	"github.com/jjenkins/volume/internal/service"
)

var dailyDate string

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Print the daily devotional",
	Long: `Daily selects the chapter and verse for a calendar date and asks the
AI service for a reflection on it. The same date always selects the same
verse.

Examples:
  # Devotional for today
  ./volume daily

  # Devotional for a specific date
  ./volume daily --date 2024-12-25`,
	RunE: runDaily,
}

func init() {
	rootCmd.AddCommand(dailyCmd)

	today := time.Now().Format("2006-01-02")
	dailyCmd.Flags().StringVarP(&dailyDate, "date", "d", today, "Date to select the devotional for (YYYY-MM-DD)")
}

func runDaily(cmd *cobra.Command, args []string) error {
	date, err := time.ParseInLocation("2006-01-02", dailyDate, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date format: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, err := newServices(ctx)
	if err != nil {
		return err
	}

	sel := service.SelectDaily(date, model.RestrictedBooks)
	logger.Debug("Selected daily chapter",
		zap.Int("seed", sel.Seed), zap.String("book", sel.Book.Name), zap.Int("chapter", sel.Chapter))

	printDevotional(cmd.OutOrStdout(), svc.daily.Devotional(ctx, date))
	return nil
}

func printDevotional(w io.Writer, d model.Devotional) {
	fmt.Fprintf(w, "%s\n%s\n\n%s\n\nPrayer: %s\n", d.Title, d.Verse, d.Content, d.Prayer)
}
