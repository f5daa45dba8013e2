package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/moodlog/ent"
	"github.com/abhisek/moodlog/ent/gad7entry"
)

// gad7Repo implements ScoreRepo over the gad_7_entries table.
type gad7Repo struct {
	client *ent.Client
}

func (r *gad7Repo) Save(ctx context.Context, score int, category string) (int, error) {
	e, err := r.client.Gad7Entry.Create().
		SetScore(score).
		SetCategory(category).
		SetTimestamp(time.Now().Truncate(time.Second)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save gad7 entry: %w", err)
	}
	return e.ID, nil
}

func (r *gad7Repo) ListAll(ctx context.Context) ([]Entry, error) {
	rows, err := r.client.Gad7Entry.Query().
		Order(ent.Desc(gad7entry.FieldTimestamp), ent.Desc(gad7entry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gad7 entries: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			ID:        row.ID,
			Score:     row.Score,
			Category:  row.Category,
			Timestamp: row.Timestamp,
		})
	}
	return entries, nil
}
