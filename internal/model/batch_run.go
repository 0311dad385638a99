package model

import "time"

// BatchRunStatus indicates how a batch run finished.
type BatchRunStatus string

// Batch run status constants.
const (
	BatchRunCompleted BatchRunStatus = "COMPLETED"
	BatchRunFailed    BatchRunStatus = "FAILED"
)

// BatchRun is the audit record of one bulk reclassification pass.
type BatchRun struct {
	CreatedAt    time.Time
	InputFile    string
	Status       BatchRunStatus
	ErrorMessage string
	ID           int64
	TotalRows    int
	Reclassified int
	NoRuleMatch  int
	Unchanged    int
	Threshold    float64
}

// KeywordEvent is the audit record of one supervisor keyword addition.
type KeywordEvent struct {
	CreatedAt time.Time
	Category  string
	Keyword   string
	ID        int64
}
