package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Veraticus/reroute/internal/cli"
	"github.com/Veraticus/reroute/internal/common"
	"github.com/Veraticus/reroute/internal/model"
	"github.com/Veraticus/reroute/internal/rules"
)

func keywordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords",
		Short: "Manage department keyword rules",
		Long:  `List and extend the keyword lists that drive reclassification.`,
	}

	cmd.AddCommand(listKeywordsCmd())
	cmd.AddCommand(addKeywordsCmd())
	cmd.AddCommand(importKeywordsCmd())
	cmd.AddCommand(keywordLogCmd())

	return cmd
}

func listKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List keywords per department",
		RunE: func(_ *cobra.Command, _ []string) error {
			router := newRouter()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("Department"),
				cli.HeaderStyle.Render("Keywords"))
			fmt.Fprintf(w, "%s\t%s\n",
				strings.Repeat("-", 12),
				strings.Repeat("-", 50))

			for _, cat := range router.Categories() {
				fmt.Fprintf(w, "%s\t%s\n", cat.Name(), strings.Join(cat.Keywords(), ", "))
			}
			return nil
		},
	}
}

func addKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <department> <comma-separated-keywords>",
		Short: "Add keywords to a department",
		Long: `Add comma-separated keywords to a department's rule list. Additions are
idempotent and saved to the rule file immediately.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			router := newRouter()
			department, input := args[0], args[1]

			added, ok := router.ModifyKeywords(department, input)
			if !ok {
				return fmt.Errorf("%w: %q (have: %s)",
					common.ErrUnknownCategory, department,
					strings.Join(departmentNames(router), ", "))
			}

			if len(added) == 0 {
				fmt.Println(cli.InfoStyle.Render("No new keywords (all empty or already present)."))
				return nil
			}

			// Audit trail is best-effort; keyword changes matter even if the
			// database is unavailable.
			if store, err := initStorage(cmd.Context()); err == nil {
				defer store.Close()
				events := make([]model.KeywordEvent, 0, len(added))
				for _, kw := range added {
					events = append(events, model.KeywordEvent{Category: department, Keyword: kw})
				}
				if err := store.SaveKeywordEvents(cmd.Context(), events); err != nil {
					common.LogError(err, "audit trail not updated", common.Fields{"department": department})
				}
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ Added %d keyword(s) to %s: %s",
					len(added), department, strings.Join(added, ", "))))
			return nil
		},
	}
}

func importKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a legacy name:kw1,kw2 rule file",
		Long: `Merge keywords from the original line-oriented rule format into the
current rule set. Lines naming unknown departments are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			router := newRouter()

			rs, err := rules.LoadLegacy(args[0])
			if err != nil {
				return err
			}

			imported := 0
			for _, cr := range rs.Categories {
				added, ok := router.ModifyKeywords(cr.Name, strings.Join(cr.Keywords, ","))
				if !ok {
					fmt.Println(cli.WarningStyle.Render(
						fmt.Sprintf("skipped unknown department %q", cr.Name)))
					continue
				}
				imported += len(added)
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("✓ Imported %d keyword(s) from %s", imported, args[0])))
			return nil
		},
	}
}

func keywordLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log [department]",
		Short: "Show recent keyword additions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			category := ""
			if len(args) == 1 {
				category = args[0]
			}

			events, err := store.ListKeywordEvents(cmd.Context(), category, limit)
			if err != nil {
				return fmt.Errorf("failed to list keyword events: %w", err)
			}
			if len(events) == 0 {
				fmt.Println(cli.InfoStyle.Render("No keyword changes recorded."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("When"),
				cli.HeaderStyle.Render("Department"),
				cli.HeaderStyle.Render("Keyword"))
			for _, ev := range events {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					ev.CreatedAt.Format("2006-01-02 15:04"), ev.Category, ev.Keyword)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum events to show")
	return cmd
}

func departmentNames(router *rules.Router) []string {
	cats := router.Categories()
	names := make([]string, 0, len(cats))
	for _, cat := range cats {
		names = append(names, cat.Name())
	}
	return names
}
