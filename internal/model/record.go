// Package model defines the core domain models used throughout the application.
package model

// Required column names of the bulk input table produced by the upstream
// classifier. Extra columns pass through untouched.
const (
	ColumnStatement  = "customer_statement"
	ColumnRouted     = "department_routed"
	ColumnConfidence = "confidence_level"
)

// Column names appended to the annotated output table.
const (
	ColumnFinal  = "final_classification"
	ColumnStatus = "processing_status"
)

// Disposition explains whether and why a record's routing was changed.
type Disposition string

// Disposition constants.
const (
	// DispositionOriginal marks records at or above the confidence threshold.
	DispositionOriginal Disposition = "Original"
	// DispositionNoRuleMatch marks low-confidence records no rule could place.
	DispositionNoRuleMatch Disposition = "Original (Low Conf - No Rule Match)"
	// DispositionReclassified marks low-confidence records a rule rerouted.
	DispositionReclassified Disposition = "Reclassified (Low Conf)"
)

// ClassificationRecord is one row of the bulk input: a prior routing decision
// made by the external classifier. Read-only to this system.
//
// Confidence is kept as the raw text from the upstream table; parsing happens
// at reclassification time so that unparseable values get defined semantics
// instead of failing the row.
type ClassificationRecord struct {
	Statement  string
	Routed     string
	Confidence string
}

// AnnotatedRecord is a ClassificationRecord plus the reclassification verdict.
type AnnotatedRecord struct {
	ClassificationRecord
	Final  string
	Status Disposition
}
