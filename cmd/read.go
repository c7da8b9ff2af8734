package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jjenkins/volume/internal/model"
)

var readCmd = &cobra.Command{
	Use:   "read <book> <chapter>",
	Short: "Print a chapter",
	Example: `  ./volume read John 3
  ./volume read Song of Solomon 2`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, chapter, err := chapterArgs(args)
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

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, ch.Reference)
		for _, v := range ch.Verses {
			fmt.Fprintf(w, "%3d  %s\n", v.Verse, v.Text)
		}

		prev, hasPrev, next, hasNext := model.Navigate(book.Name, chapter)
		if hasPrev {
			fmt.Fprintf(w, "\nprev: %s %d", prev.Book, prev.Chapter)
		}
		if hasNext {
			fmt.Fprintf(w, "\nnext: %s %d", next.Book, next.Chapter)
		}
		fmt.Fprintln(w)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}

// chapterArgs splits "<book words...> <chapter>" and checks the chapter
// against the catalog
func chapterArgs(args []string) (model.Book, int, error) {
	last := len(args) - 1
	chapter, err := strconv.Atoi(args[last])
	if err != nil {
		return model.Book{}, 0, fmt.Errorf("invalid chapter %q", args[last])
	}

	name := strings.Join(args[:last], " ")
	book, ok := model.LookupBook(name)
	if !ok {
		return model.Book{}, 0, fmt.Errorf("unknown book %q", name)
	}
	if chapter < 1 || chapter > book.Chapters {
		return model.Book{}, 0, fmt.Errorf("%s has chapters 1-%d", book.Name, book.Chapters)
	}
	return book, chapter, nil
}
