package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/reroute/internal/cli"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Route a single statement through the keyword rules",
		Long: `Score a customer statement against every department's keyword list and
print the winning department. Text matching no rule reports as Uncertain.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			router := newRouter()
			text := strings.Join(args, " ")

			pred := router.Predict(text)
			if pred.IsNoMatch() {
				fmt.Println(cli.WarningStyle.Render(
					fmt.Sprintf("%s (no keyword rule matched)", pred.Category)))
				return nil
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("%s (score %d)", pred.Category, pred.Score)))
			return nil
		},
	}
}
