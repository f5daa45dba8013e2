package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/moodlog/internal/screening"
	"github.com/spf13/cobra"
)

var scoreNoSave bool

var scoreCmd = &cobra.Command{
	Use:   "score <instrument> <responses>",
	Short: "Score a check-in without the TUI",
	Long: `Score a check-in from a comma-separated list of item responses and save it.

Examples:
  moodlog score anxiety 1,2,3,2,1,0,1
  moodlog score depression 2,1,0,2,1,3,2,1,0,2,1,0,2,1,3,2,1,0,2,1,0,2,1,0,0`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, registry, st, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		in, ok := registry.ByID(args[0])
		if !ok {
			return fmt.Errorf("unknown instrument %q (known: %s)", args[0], knownIDs(registry))
		}

		responses, err := parseResponses(args[1])
		if err != nil {
			return err
		}

		score, err := screening.Score(in, responses)
		if err != nil {
			return err
		}
		cls := screening.Classify(in, score)

		if !scoreNoSave {
			id, err := st.RepoFor(in.ID).Save(cmd.Context(), score, cls.Label())
			if err != nil {
				return fmt.Errorf("save entry: %w", err)
			}
			fmt.Printf("Saved entry #%d\n", id)
		}

		fmt.Printf("%s: %d/%d — %s\n", in.Name, score, in.MaxScore(), cls.Label())
		return nil
	},
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreNoSave, "no-save", false, "Score and classify only, don't record the entry")
}

func parseResponses(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	responses := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("response %q is not a number", p)
		}
		responses = append(responses, n)
	}
	return responses, nil
}

func knownIDs(registry *screening.Registry) string {
	var ids []string
	for _, in := range registry.All() {
		ids = append(ids, in.ID)
	}
	return strings.Join(ids, ", ")
}
