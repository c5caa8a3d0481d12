package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"placement-backend/internal/assessment"
)

func newPlanCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Complete a partial 7-day preparation plan",
		Long: "Reads a JSON array of plan days ({day, focus, activities}) from --file or stdin\n" +
			"and prints the 7-day plan with missing days filled from the defaults.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			days, err := readPlan(in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), assessment.CompletePlan(days))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with plan days (default stdin)")
	return cmd
}

func readPlan(r io.Reader) ([]assessment.PreparationDay, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var days []assessment.PreparationDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return days, nil
}
