package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/moodlog/ent"
	"github.com/abhisek/moodlog/ent/customentry"
)

// customRepo implements ScoreRepo for a user-defined instrument over the
// shared custom_entries table, partitioned by instrument ID.
type customRepo struct {
	client       *ent.Client
	instrumentID string
}

func (r *customRepo) Save(ctx context.Context, score int, category string) (int, error) {
	e, err := r.client.CustomEntry.Create().
		SetInstrumentID(r.instrumentID).
		SetScore(score).
		SetCategory(category).
		SetTimestamp(time.Now().Truncate(time.Second)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save %s entry: %w", r.instrumentID, err)
	}
	return e.ID, nil
}

func (r *customRepo) ListAll(ctx context.Context) ([]Entry, error) {
	rows, err := r.client.CustomEntry.Query().
		Where(customentry.InstrumentID(r.instrumentID)).
		Order(ent.Desc(customentry.FieldTimestamp), ent.Desc(customentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s entries: %w", r.instrumentID, err)
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
