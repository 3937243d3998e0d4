package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) compareCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare <original> <followup>",
		Short: "Compare a follow-up stroke with the original attempt",
		Long: `Analyzes both inputs and reports whether the follow-up moved closer to the
optimal ranges of the original attempt's shot type.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			a, err := c.newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			original, err := a.service.AnalyzeFile(ctx, "original", args[0], nil)
			if err != nil {
				return fmt.Errorf("original attempt: %w", err)
			}
			followup, err := a.service.AnalyzeFile(ctx, "followup", args[1], nil)
			if err != nil {
				return fmt.Errorf("follow-up attempt: %w", err)
			}

			if asJSON {
				resp, err := a.service.Compare(ctx, original.ID, followup.ID)
				if err != nil {
					return err
				}
				return writeJSON(out, resp)
			}

			report, err := a.service.CompareSummary(ctx, original.ID, followup.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the comparison as JSON")
	return cmd
}
