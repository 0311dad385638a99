package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/reroute/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidRun     = errors.New("invalid batch run")
	ErrInvalidKeyword = errors.New("invalid keyword event")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateBatchRun validates a batch run before insertion.
func validateBatchRun(run *model.BatchRun) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if run.TotalRows < 0 {
		return fmt.Errorf("%w: negative row count", ErrInvalidRun)
	}
	if run.Status != model.BatchRunCompleted && run.Status != model.BatchRunFailed {
		return fmt.Errorf("%w: status %q", ErrInvalidRun, run.Status)
	}
	return nil
}

// validateKeywordEvent validates a keyword event before insertion.
func validateKeywordEvent(ev *model.KeywordEvent) error {
	if ev == nil {
		return fmt.Errorf("%w: event", ErrNilParameter)
	}
	if strings.TrimSpace(ev.Category) == "" {
		return fmt.Errorf("%w: empty category", ErrInvalidKeyword)
	}
	if strings.TrimSpace(ev.Keyword) == "" {
		return fmt.Errorf("%w: empty keyword", ErrInvalidKeyword)
	}
	return nil
}
