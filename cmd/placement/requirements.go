package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"placement-backend/internal/assessment"
	"placement-backend/internal/evalclient"
)

func newRequirementsCmd(root *rootOptions) *cobra.Command {
	var (
		serviceURL string
		weights    bool
	)
	cmd := &cobra.Command{
		Use:   "requirements",
		Short: "List role requirements and skill weights from the evaluation service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if serviceURL == "" {
				serviceURL = root.cfg.EvaluationServiceURL
			}
			client := evalclient.NewClient(serviceURL, root.cfg.HTTPTimeout)
			roles, simulated := evalclient.NewEvaluator(client, 0).Requirements(cmd.Context())

			w := cmd.OutOrStdout()
			if simulated {
				fmt.Fprintf(w, "NOTE: %s\n\n", evalclient.SimulatedNotice)
			}
			for _, role := range roles {
				fmt.Fprintf(w, "%s: %s\n", role.Role, role.Description)
				for _, req := range role.Requirements {
					fmt.Fprintf(w, "  %-18s >= %d\n", req.Skill, req.Minimum)
				}
			}
			if !weights {
				return nil
			}

			skillWeights, err := client.SkillWeights(cmd.Context())
			if err != nil {
				skillWeights = assessment.SkillWeights()
			}
			names := make([]string, 0, len(skillWeights))
			for name := range skillWeights {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Fprintln(w, "\nSkill weights:")
			for _, name := range names {
				fmt.Fprintf(w, "  %-18s %.2f\n", name, skillWeights[name])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&serviceURL, "service", "", "evaluation service base URL (overrides EVALUATION_SERVICE_URL)")
	cmd.Flags().BoolVar(&weights, "weights", false, "also print skill weights")
	return cmd
}
