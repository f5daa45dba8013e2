package store

import (
	"context"
	"time"
)

// Entry is one persisted, immutable score record. The category is the
// label the classifier produced when the entry was written; it is never
// recomputed, so revising a band table leaves historical rows untouched.
type Entry struct {
	ID        int
	Score     int
	Category  string
	Timestamp time.Time
}

// ScoreRepo provides append-only access to one instrument's entries.
type ScoreRepo interface {
	// Save appends an entry stamped with the current wall-clock time at
	// second resolution and returns its storage-assigned id. Ids are
	// monotonically increasing within the instrument's table.
	Save(ctx context.Context, score int, category string) (int, error)

	// ListAll returns every entry, newest timestamp first. It returns a
	// fresh slice on each call; empty if nothing has been saved yet.
	ListAll(ctx context.Context) ([]Entry, error)
}
