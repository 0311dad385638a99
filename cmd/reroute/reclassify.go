package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/reroute/internal/cli"
	"github.com/Veraticus/reroute/internal/common"
	"github.com/Veraticus/reroute/internal/csvio"
	"github.com/Veraticus/reroute/internal/engine"
	"github.com/Veraticus/reroute/internal/model"
)

func reclassifyCmd() *cobra.Command {
	var (
		output     string
		threshold  float64
		samplePath string
		noAudit    bool
	)

	cmd := &cobra.Command{
		Use:   "reclassify <input.csv>",
		Short: "Re-evaluate low-confidence rows of a classification export",
		Long: `Read a CSV export from the upstream classifier, re-evaluate every row whose
confidence_level falls below the threshold, and write the table back out with
final_classification and processing_status columns appended.

Required input columns: customer_statement, department_routed,
confidence_level. Extra columns pass through unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if samplePath != "" {
				return writeSample(samplePath)
			}
			if len(args) != 1 {
				return fmt.Errorf("input file required (or use --sample to generate one)")
			}
			input := args[0]

			if !cmd.Flags().Changed("threshold") {
				threshold = viper.GetFloat64("reclassify.threshold")
			}
			if threshold < 0 || threshold > 1 {
				return fmt.Errorf("threshold must be within [0, 1], got %v", threshold)
			}

			table, err := csvio.ReadFile(input)
			if err != nil {
				return err
			}

			bar := progressbar.Default(int64(len(table.Rows)), "reclassifying")
			rec := engine.NewReclassifier(newRouter().Classifier,
				engine.WithProgress(func(done, _ int) {
					_ = bar.Set(done)
				}))

			annotated, summary, err := rec.ProcessTable(table, threshold)
			_ = bar.Finish()

			if !noAudit {
				recordRun(cmd, input, threshold, summary, err)
			}
			if err != nil {
				return common.NewUserError("reclassification failed", err)
			}

			if output == "" {
				output = strings.TrimSuffix(input, ".csv") + "_reclassified.csv"
			}
			if err := csvio.WriteFile(output, annotated); err != nil {
				return err
			}

			printSummary(output, threshold, summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>_reclassified.csv)")
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0.60, "confidence threshold; rows strictly below are re-evaluated")
	cmd.Flags().StringVar(&samplePath, "sample", "", "write a sample input CSV to this path and exit")
	cmd.Flags().BoolVar(&noAudit, "no-audit", false, "skip recording this run in the audit database")

	return cmd
}

// recordRun saves the batch run to the audit database. Audit failures are
// reported but never fail the reclassification itself.
func recordRun(cmd *cobra.Command, input string, threshold float64, summary engine.Summary, runErr error) {
	store, err := initStorage(cmd.Context())
	if err != nil {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("run not audited: %v", err)))
		return
	}
	defer store.Close()

	run := &model.BatchRun{
		InputFile:    input,
		Threshold:    threshold,
		TotalRows:    summary.Total,
		Reclassified: summary.Reclassified,
		NoRuleMatch:  summary.NoRuleMatch,
		Unchanged:    summary.Unchanged,
		Status:       model.BatchRunCompleted,
	}
	if runErr != nil {
		run.Status = model.BatchRunFailed
		run.ErrorMessage = runErr.Error()
	}

	if err := store.SaveBatchRun(cmd.Context(), run); err != nil {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("run not audited: %v", err)))
	}
}

func printSummary(output string, threshold float64, summary engine.Summary) {
	fmt.Println(cli.TitleStyle.Render("Reclassification complete"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Rows processed:\t%d\n", summary.Total)
	fmt.Fprintf(w, "Reclassified:\t%d\n", summary.Reclassified)
	fmt.Fprintf(w, "No rule match:\t%d\n", summary.NoRuleMatch)
	fmt.Fprintf(w, "Unchanged:\t%d\n", summary.Unchanged)
	fmt.Fprintf(w, "Threshold:\t%.2f\n", threshold)
	w.Flush()

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Wrote %s", output)))
}

// writeSample emits a small input file exercising every disposition.
func writeSample(path string) error {
	sample := &csvio.Table{
		Header: []string{model.ColumnStatement, model.ColumnRouted, model.ColumnConfidence},
		Rows: [][]string{
			{"I need to reset my password immediately", "Service", "0.95"},
			{"i want to buy 100 shares of apple", "Service", "0.40"},
			{"what is the limit for my 401k contribution", "Service", "0.35"},
			{"where is the tax form 1099 for last year", "Service", "0.45"},
			{"Can you tell me a joke or the weather?", "Service", "0.30"},
			{"I want to sell my mutual funds", "Retirement", "0.92"},
		},
	}
	if err := csvio.WriteFile(path, sample); err != nil {
		return err
	}
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Wrote sample to %s", path)))
	return nil
}
