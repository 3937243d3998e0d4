package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jengzang/cricketsense-backend-go/internal/models"
)

func (c *cli) analyzeCmd() *cobra.Command {
	var (
		label     string
		asJSON    bool
		narrate   bool
		showPhase bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <frames.jsonl|video>",
		Short: "Analyze one stroke and print coaching advice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			a, err := c.newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			var onPreview func(*models.Preview)
			if showPhase {
				onPreview = func(p *models.Preview) {
					fmt.Fprintf(out, "frame %5d  %-14s detected=%t\n", p.Frame, p.Phase, p.Detected)
				}
			}

			attempt, err := a.service.AnalyzeFile(ctx, label, args[0], onPreview)
			if err != nil {
				return err
			}

			if asJSON {
				resp, err := a.service.Advice(ctx, attempt.ID)
				if err != nil {
					return err
				}
				return writeJSON(out, map[string]any{
					"attempt": attempt,
					"advice":  resp,
				})
			}

			summary, err := a.service.Summary(ctx, attempt.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, summary)

			if narrate {
				note, err := a.service.Narrative(ctx, attempt.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s\n", note)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "label stored with the attempt")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print metrics and advice as JSON")
	cmd.Flags().BoolVar(&narrate, "narrative", false, "append a personal coaching note")
	cmd.Flags().BoolVar(&showPhase, "phases", false, "print the phase of every frame")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
