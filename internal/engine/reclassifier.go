// Package engine applies the batch reclassification policy to tables of
// prior classification decisions.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/reroute/internal/common"
	"github.com/Veraticus/reroute/internal/csvio"
	"github.com/Veraticus/reroute/internal/model"
	"github.com/Veraticus/reroute/internal/rules"
)

// Policy names the override behavior this engine implements. Only the
// no-match-aware policy is supported: a below-threshold record whose text
// matches any rule is always overwritten with the predicted category, even
// when the prediction agrees with the original routing; a record matching no
// rule keeps its original routing.
const Policy = "no-match-aware"

// Summary counts the dispositions of one batch run.
type Summary struct {
	Total        int
	Reclassified int
	NoRuleMatch  int
	Unchanged    int
}

// Reclassifier re-evaluates low-confidence records against a classifier.
type Reclassifier struct {
	classifier *rules.Classifier
	progress   func(done, total int)
}

// Option configures a Reclassifier.
type Option func(*Reclassifier)

// WithProgress registers a callback invoked after each processed record.
func WithProgress(fn func(done, total int)) Option {
	return func(r *Reclassifier) {
		r.progress = fn
	}
}

// NewReclassifier creates a reclassifier using the given classifier.
func NewReclassifier(classifier *rules.Classifier, opts ...Option) *Reclassifier {
	r := &Reclassifier{classifier: classifier}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reclassify annotates every record with a final classification and a
// disposition. Records whose confidence is below the threshold (strict
// less-than) are re-predicted; everything else keeps its original routing.
// The input slice is never modified.
//
// Confidence values that fail numeric parsing are defined to compare as not
// below the threshold, so they never trigger reclassification.
func (r *Reclassifier) Reclassify(records []model.ClassificationRecord, threshold float64) []model.AnnotatedRecord {
	annotated := make([]model.AnnotatedRecord, 0, len(records))
	for i, rec := range records {
		annotated = append(annotated, r.decide(rec, threshold))
		if r.progress != nil {
			r.progress(i+1, len(records))
		}
	}
	return annotated
}

func (r *Reclassifier) decide(rec model.ClassificationRecord, threshold float64) model.AnnotatedRecord {
	out := model.AnnotatedRecord{
		ClassificationRecord: rec,
		Final:                rec.Routed,
		Status:               model.DispositionOriginal,
	}

	conf, err := strconv.ParseFloat(strings.TrimSpace(rec.Confidence), 64)
	if err != nil || !(conf < threshold) {
		return out
	}

	pred := r.classifier.Predict(rec.Statement)
	if pred.IsNoMatch() {
		out.Status = model.DispositionNoRuleMatch
		return out
	}

	out.Final = pred.Category
	out.Status = model.DispositionReclassified
	return out
}

// ProcessTable validates the table schema, reclassifies every row, and
// returns a new table with the final_classification and processing_status
// columns appended. The input table is left untouched. Any defective row
// aborts the batch: the caller gets an error and no partial table.
func (r *Reclassifier) ProcessTable(t *csvio.Table, threshold float64) (*csvio.Table, Summary, error) {
	statementCol, routedCol, confidenceCol, err := requiredColumns(t)
	if err != nil {
		return nil, Summary{}, err
	}

	records := make([]model.ClassificationRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return nil, Summary{}, fmt.Errorf("row %d has %d fields, expected %d", i+1, len(row), len(t.Header))
		}
		records = append(records, model.ClassificationRecord{
			Statement:  row[statementCol],
			Routed:     row[routedCol],
			Confidence: row[confidenceCol],
		})
	}

	annotated := r.Reclassify(records, threshold)

	out := &csvio.Table{
		Header: append(append([]string{}, t.Header...), model.ColumnFinal, model.ColumnStatus),
		Rows:   make([][]string, 0, len(t.Rows)),
	}

	var summary Summary
	summary.Total = len(annotated)
	for i, ann := range annotated {
		row := append(append([]string{}, t.Rows[i]...), ann.Final, string(ann.Status))
		out.Rows = append(out.Rows, row)

		switch ann.Status {
		case model.DispositionReclassified:
			summary.Reclassified++
		case model.DispositionNoRuleMatch:
			summary.NoRuleMatch++
		case model.DispositionOriginal:
			summary.Unchanged++
		}
	}
	return out, summary, nil
}

// requiredColumns locates the three required columns, reporting every
// missing one in a single error.
func requiredColumns(t *csvio.Table) (statement, routed, confidence int, err error) {
	var missing []string

	statement, ok := t.Column(model.ColumnStatement)
	if !ok {
		missing = append(missing, model.ColumnStatement)
	}
	routed, ok = t.Column(model.ColumnRouted)
	if !ok {
		missing = append(missing, model.ColumnRouted)
	}
	confidence, ok = t.Column(model.ColumnConfidence)
	if !ok {
		missing = append(missing, model.ColumnConfidence)
	}

	if len(missing) > 0 {
		return 0, 0, 0, fmt.Errorf("%w: %s", common.ErrMissingColumns, strings.Join(missing, ", "))
	}
	return statement, routed, confidence, nil
}
