package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/reroute/internal/cli"
	"github.com/Veraticus/reroute/internal/model"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent reclassification runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListBatchRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list batch runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println(cli.InfoStyle.Render("No runs recorded. Use 'reroute reclassify' to process a file."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("When"),
				cli.HeaderStyle.Render("Input"),
				cli.HeaderStyle.Render("Thresh"),
				cli.HeaderStyle.Render("Rows"),
				cli.HeaderStyle.Render("Rerouted"),
				cli.HeaderStyle.Render("No Match"),
				cli.HeaderStyle.Render("Status"))

			for _, run := range runs {
				status := string(run.Status)
				if run.Status == model.BatchRunFailed {
					status = cli.ErrorStyle.Render(status)
					if run.ErrorMessage != "" {
						status += cli.SubtleStyle.Render(" " + truncate(run.ErrorMessage, 40))
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%d\t%d\t%s\n",
					run.CreatedAt.Format("2006-01-02 15:04"),
					run.InputFile, run.Threshold, run.TotalRows,
					run.Reclassified, run.NoRuleMatch, status)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to show")
	return cmd
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "…"
}
