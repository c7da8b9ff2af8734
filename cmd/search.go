package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jjenkins/volume/internal/model"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search scripture by reference or topic",
	Long: `Search tries the query as a direct reference first ("John 3:16",
"Psalm 23"). When nothing matches, the AI service suggests references for
the topic and each one is looked up.

Examples:
  ./volume search John 3:16
  ./volume search forgiveness of enemies`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := newServices(ctx)
		if err != nil {
			return err
		}

		result := svc.search.Resolve(ctx, strings.Join(args, " "))
		printSearchResult(cmd.OutOrStdout(), result)
		if result.Kind() == model.KindError {
			return fmt.Errorf("no results")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func printSearchResult(w io.Writer, r model.SearchResult) {
	switch r.Kind() {
	case model.KindError:
		fmt.Fprintln(w, r.Error)
	case model.KindPassage:
		fmt.Fprintf(w, "%s\n%s\n", r.Reference, r.Text)
	default:
		if r.IsAIGenerated {
			fmt.Fprintln(w, "(references suggested by AI)")
		}
		for _, v := range r.Verses {
			fmt.Fprintf(w, "%s  %s\n", v.Citation(), v.Text)
		}
	}
}
