package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/moodlog/internal/timewindow"
	"github.com/spf13/cobra"
)

var (
	historyRange string
	historyFrom  string
	historyTo    string
)

var historyCmd = &cobra.Command{
	Use:   "history <instrument>",
	Short: "List past check-ins, newest first",
	Long: `List past check-ins for an instrument, newest first.

Examples:
  moodlog history depression
  moodlog history anxiety --range month
  moodlog history anxiety --from 2026-01-01 --to 2026-03-31`,
	Args: cobra.ExactArgs(1),
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

		window, err := historyWindow()
		if err != nil {
			return err
		}

		entries, err := st.RepoFor(in.ID).ListAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		entries = timewindow.Filter(entries, window)

		if len(entries) == 0 {
			fmt.Println("No entries in this range.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("#%-4d %s  %3d/%d  %s\n",
				e.ID,
				e.Timestamp.Format("2006-01-02 15:04"),
				e.Score, in.MaxScore(),
				e.Category)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyRange, "range", string(timewindow.AllTime),
		"Time range preset: all, week, month, year")
	historyCmd.Flags().StringVar(&historyFrom, "from", "", "Custom range start (2006-01-02, overrides --range)")
	historyCmd.Flags().StringVar(&historyTo, "to", "", "Custom range end (2006-01-02, overrides --range)")
}

// historyWindow resolves the window from the flags. --from/--to together
// define a custom window; otherwise --range is resolved against now.
func historyWindow() (timewindow.Window, error) {
	if historyFrom != "" || historyTo != "" {
		if historyFrom == "" || historyTo == "" {
			return timewindow.Window{}, fmt.Errorf("--from and --to must be given together")
		}
		from, err := time.ParseInLocation("2006-01-02", historyFrom, time.Local)
		if err != nil {
			return timewindow.Window{}, fmt.Errorf("parse --from: %w", err)
		}
		to, err := time.ParseInLocation("2006-01-02", historyTo, time.Local)
		if err != nil {
			return timewindow.Window{}, fmt.Errorf("parse --to: %w", err)
		}
		// Make the end date inclusive for the whole day.
		return timewindow.Custom(from, to.Add(24*time.Hour-time.Second)), nil
	}

	return timewindow.Resolve(timewindow.Preset(historyRange), time.Now())
}
