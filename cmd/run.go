package cmd

import (
	"fmt"

	"github.com/abhisek/moodlog/internal/app"
	"github.com/abhisek/moodlog/internal/config"
	"github.com/abhisek/moodlog/internal/screening"
	"github.com/abhisek/moodlog/internal/store"
	"github.com/abhisek/moodlog/internal/timewindow"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, registry, st, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Registry:     registry,
		Store:        st,
		DefaultRange: timewindow.Preset(cfg.DefaultRange),
	})
}

// bootstrap loads configuration, builds the instrument registry, and opens
// the store. Shared by the TUI and the non-interactive subcommands.
func bootstrap(cmd *cobra.Command) (*config.Config, *screening.Registry, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	return cfg, registry, st, nil
}

// buildRegistry combines the built-in instruments with the optional
// user-defined catalog.
func buildRegistry(cfg *config.Config) (*screening.Registry, error) {
	instruments := screening.Builtin()

	if cfg.InstrumentsPath != "" {
		custom, err := screening.LoadCatalog(cfg.InstrumentsPath)
		if err != nil {
			return nil, fmt.Errorf("load instrument catalog: %w", err)
		}
		instruments = append(instruments, custom...)
	}

	return screening.NewRegistry(instruments...), nil
}
