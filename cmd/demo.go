package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/abhisek/moodlog/internal/screening"
	"github.com/abhisek/moodlog/internal/store"
	"github.com/spf13/cobra"
)

// demoResponses are plausible filled-in questionnaires used to seed a
// database for trying out the history view.
var demoResponses = map[string][][]int{
	"depression": {
		{2, 1, 0, 2, 1, 3, 2, 1, 0, 2, 1, 0, 2, 1, 3, 2, 1, 0, 2, 1, 0, 2, 1, 0, 0},
		{1, 1, 0, 1, 0, 2, 1, 0, 0, 1, 1, 0, 1, 0, 2, 1, 0, 0, 1, 1, 0, 1, 0, 0, 0},
		{0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
	},
	"anxiety": {
		{1, 2, 3, 2, 1, 0, 1},
		{1, 1, 2, 1, 1, 0, 1},
		{0, 1, 1, 0, 0, 0, 1},
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Record a few sample check-ins and list what was stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, registry, st, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return runDemo(cmd.Context(), cmd.OutOrStdout(), registry, st)
	},
}

// runDemo exercises the full round trip for every instrument: score and
// save the sample check-ins, then read everything back and print it.
func runDemo(ctx context.Context, w io.Writer, registry *screening.Registry, st *store.Store) error {
	for _, in := range registry.All() {
		repo := st.RepoFor(in.ID)

		for _, responses := range demoResponses[in.ID] {
			score, err := screening.Score(in, responses)
			if err != nil {
				return fmt.Errorf("%s: %w", in.ID, err)
			}
			cls := screening.Classify(in, score)
			id, err := repo.Save(ctx, score, cls.Label())
			if err != nil {
				return fmt.Errorf("save %s entry: %w", in.ID, err)
			}
			fmt.Fprintf(w, "%s #%d: %d/%d — %s\n", in.Name, id, score, in.MaxScore(), cls.Label())
		}

		entries, err := repo.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("list %s entries: %w", in.ID, err)
		}
		fmt.Fprintf(w, "\n%s — %d stored entries, newest first:\n", in.Name, len(entries))
		for _, e := range entries {
			fmt.Fprintf(w, "  #%-4d %s  %3d/%d  %s\n",
				e.ID,
				e.Timestamp.Format("2006-01-02 15:04"),
				e.Score, in.MaxScore(),
				e.Category)
		}
		fmt.Fprintln(w)
	}
	return nil
}
