package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/moodlog/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to the per-instrument
// entry repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the entry tables if they do
// not exist yet; opening an already-initialized database is a no-op, so
// every process startup can call it safely.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw statements.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// ChecklistRepo returns the Burns Depression Checklist repository.
func (s *Store) ChecklistRepo() ScoreRepo {
	return &checklistRepo{client: s.client}
}

// Gad7Repo returns the GAD-7 repository.
func (s *Store) Gad7Repo() ScoreRepo {
	return &gad7Repo{client: s.client}
}

// RepoFor returns the repository for the given instrument ID. The two
// built-in instruments map to their own tables; any other ID maps to the
// shared custom-entry table partitioned by instrument ID.
func (s *Store) RepoFor(instrumentID string) ScoreRepo {
	switch instrumentID {
	case "depression":
		return s.ChecklistRepo()
	case "anxiety":
		return s.Gad7Repo()
	default:
		return &customRepo{client: s.client, instrumentID: instrumentID}
	}
}

// applyPragmas configures SQLite for single-user local use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MOODLOG_DB environment variable
// 2. $XDG_DATA_HOME/moodlog/moodlog.db
// 3. ~/.local/share/moodlog/moodlog.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MOODLOG_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "moodlog", "moodlog.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
