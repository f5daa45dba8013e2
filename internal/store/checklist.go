package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/moodlog/ent"
	"github.com/abhisek/moodlog/ent/checklistentry"
)

// checklistRepo implements ScoreRepo over the checklist_entries table.
type checklistRepo struct {
	client *ent.Client
}

func (r *checklistRepo) Save(ctx context.Context, score int, category string) (int, error) {
	e, err := r.client.ChecklistEntry.Create().
		SetScore(score).
		SetCategory(category).
		SetTimestamp(time.Now().Truncate(time.Second)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save checklist entry: %w", err)
	}
	return e.ID, nil
}

func (r *checklistRepo) ListAll(ctx context.Context) ([]Entry, error) {
	rows, err := r.client.ChecklistEntry.Query().
		Order(ent.Desc(checklistentry.FieldTimestamp), ent.Desc(checklistentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list checklist entries: %w", err)
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
