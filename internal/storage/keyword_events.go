package storage

import (
	"context"
	"fmt"

	"github.com/Veraticus/reroute/internal/model"
)

// SaveKeywordEvents records keyword additions in one transaction.
func (s *SQLiteStorage) SaveKeywordEvents(ctx context.Context, events []model.KeywordEvent) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	for i := range events {
		if err := validateKeywordEvent(&events[i]); err != nil {
			return fmt.Errorf("event at index %d: %w", i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, ev := range events {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO keyword_events (category, keyword) VALUES (?, ?)`,
			ev.Category, ev.Keyword); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert keyword event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit keyword events: %w", err)
	}
	return nil
}

// ListKeywordEvents returns keyword additions for a category, newest first.
// An empty category returns events across all categories.
func (s *SQLiteStorage) ListKeywordEvents(ctx context.Context, category string, limit int) ([]model.KeywordEvent, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, created_at, category, keyword
		FROM keyword_events
		WHERE (? = '' OR category = ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, category, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query keyword events: %w", err)
	}
	defer rows.Close()

	var events []model.KeywordEvent
	for rows.Next() {
		var ev model.KeywordEvent
		if err := rows.Scan(&ev.ID, &ev.CreatedAt, &ev.Category, &ev.Keyword); err != nil {
			return nil, fmt.Errorf("failed to scan keyword event: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating keyword events: %w", err)
	}
	return events, nil
}
