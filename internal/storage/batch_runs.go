package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/reroute/internal/model"
)

// SaveBatchRun records one bulk reclassification pass and sets run.ID.
func (s *SQLiteStorage) SaveBatchRun(ctx context.Context, run *model.BatchRun) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBatchRun(run); err != nil {
		return err
	}

	query := `
		INSERT INTO batch_runs
			(input_file, threshold, total_rows, reclassified, no_rule_match, unchanged, status, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := s.db.ExecContext(ctx, query,
		run.InputFile, run.Threshold, run.TotalRows,
		run.Reclassified, run.NoRuleMatch, run.Unchanged,
		string(run.Status), run.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to insert batch run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read batch run id: %w", err)
	}
	run.ID = id

	slog.Debug("recorded batch run", "id", id, "rows", run.TotalRows, "reclassified", run.Reclassified)
	return nil
}

// ListBatchRuns returns the most recent batch runs, newest first.
func (s *SQLiteStorage) ListBatchRuns(ctx context.Context, limit int) ([]model.BatchRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, created_at, input_file, threshold, total_rows,
		       reclassified, no_rule_match, unchanged, status, COALESCE(error_message, '')
		FROM batch_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query batch runs: %w", err)
	}
	defer rows.Close()

	var runs []model.BatchRun
	for rows.Next() {
		var run model.BatchRun
		var status string
		if err := rows.Scan(&run.ID, &run.CreatedAt, &run.InputFile, &run.Threshold,
			&run.TotalRows, &run.Reclassified, &run.NoRuleMatch, &run.Unchanged,
			&status, &run.ErrorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan batch run: %w", err)
		}
		run.Status = model.BatchRunStatus(status)
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating batch runs: %w", err)
	}

	slog.Debug("retrieved batch runs", "count", len(runs))
	return runs, nil
}
