package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"placement-backend/internal/assessment"
	"placement-backend/internal/evalclient"
)

type evaluateOptions struct {
	scores      assessment.SkillScores
	feedback    string
	interactive bool
	local       bool
	serviceURL  string
	mockDelay   time.Duration
	asJSON      bool
}

func newEvaluateCmd(root *rootOptions) *cobra.Command {
	opts := &evaluateOptions{mockDelay: -1}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a candidate against the evaluation service",
		Long: "Submits six skill scores and interview feedback to the evaluation service.\n" +
			"When the service is unreachable the local mock evaluation is shown instead.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := assessment.Request{SkillScores: opts.scores, Feedback: opts.feedback}
			if opts.interactive {
				var err error
				if req, err = promptRequest(); err != nil {
					return err
				}
			}

			var out evalclient.Outcome
			if opts.local {
				if err := req.Validate(); err != nil {
					return err
				}
				out = evalclient.Outcome{Response: assessment.Assemble(req, assessment.MockRoleRequirements())}
			} else {
				serviceURL := opts.serviceURL
				if serviceURL == "" {
					serviceURL = root.cfg.EvaluationServiceURL
				}
				delay := opts.mockDelay
				if !cmd.Flags().Changed("mock-delay") {
					delay = root.cfg.MockDelay
				}
				client := evalclient.NewClient(serviceURL, root.cfg.HTTPTimeout)
				var err error
				out, err = evalclient.NewEvaluator(client, delay).Submit(cmd.Context(), req)
				if err != nil {
					return err
				}
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Response)
			}
			printOutcome(cmd.OutOrStdout(), out)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.scores.Excel, "excel", 0, "Excel score (0-100)")
	f.IntVar(&opts.scores.SQL, "sql", 0, "SQL score (0-100)")
	f.IntVar(&opts.scores.Python, "python", 0, "Python score (0-100)")
	f.IntVar(&opts.scores.Stats, "stats", 0, "Statistics score (0-100)")
	f.IntVar(&opts.scores.ML, "ml", 0, "Machine Learning score (0-100)")
	f.IntVar(&opts.scores.BI, "bi", 0, "BI Tools score (0-100)")
	f.StringVar(&opts.feedback, "feedback", "", "interview feedback (at least 20 characters)")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for scores and feedback")
	f.BoolVar(&opts.local, "local", false, "evaluate locally without calling the service")
	f.StringVar(&opts.serviceURL, "service", "", "evaluation service base URL (overrides EVALUATION_SERVICE_URL)")
	f.DurationVar(&opts.mockDelay, "mock-delay", evalclient.DefaultMockDelay, "delay before showing simulated results")
	f.BoolVar(&opts.asJSON, "output-json", false, "print the full response as JSON")
	return cmd
}

func promptRequest() (assessment.Request, error) {
	var req assessment.Request
	for _, skill := range assessment.Skills {
		p := promptui.Prompt{
			Label:    skill.DisplayName() + " score",
			Default:  "0",
			Validate: validateScore,
		}
		raw, err := p.Run()
		if err != nil {
			return req, err
		}
		score, _ := strconv.Atoi(strings.TrimSpace(raw))
		setScore(&req.SkillScores, skill, score)
	}

	p := promptui.Prompt{
		Label:    "Interview feedback",
		Validate: validateFeedback,
	}
	feedback, err := p.Run()
	if err != nil {
		return req, err
	}
	req.Feedback = feedback
	return req, nil
}

func validateScore(raw string) error {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if v < assessment.MinScore || v > assessment.MaxScore {
		return errors.New("score must be between 0 and 100")
	}
	return nil
}

func validateFeedback(raw string) error {
	if len([]rune(strings.TrimSpace(raw))) < assessment.MinFeedbackLength {
		return fmt.Errorf("feedback must be at least %d characters", assessment.MinFeedbackLength)
	}
	return nil
}

func setScore(s *assessment.SkillScores, skill assessment.Skill, v int) {
	switch skill {
	case assessment.SkillExcel:
		s.Excel = v
	case assessment.SkillSQL:
		s.SQL = v
	case assessment.SkillPython:
		s.Python = v
	case assessment.SkillStats:
		s.Stats = v
	case assessment.SkillML:
		s.ML = v
	case assessment.SkillBI:
		s.BI = v
	}
}

func printOutcome(w io.Writer, out evalclient.Outcome) {
	if out.Simulated {
		fmt.Fprintf(w, "NOTE: %s\n\n", out.Notice)
	}
	resp := out.Response
	fmt.Fprintf(w, "Readiness: %s (%d/100)\n", resp.Readiness.Status, resp.Readiness.Score)
	for _, line := range resp.Readiness.SkillBreakdown {
		fmt.Fprintf(w, "  %-18s %3d  %s\n", line.Skill, line.Score, line.Status)
	}

	fmt.Fprintln(w, "\nRecommended roles:")
	for _, r := range resp.RoleSuitability.Recommended {
		fmt.Fprintf(w, "  %s (%d%% match)\n", r.Role, r.MatchScore)
	}
	if len(resp.RoleSuitability.NotRecommended) > 0 {
		fmt.Fprintln(w, "Not recommended:")
		for _, r := range resp.RoleSuitability.NotRecommended {
			fmt.Fprintf(w, "  %s: %s\n", r.Role, strings.Join(r.Gaps, "; "))
		}
	}

	fmt.Fprintln(w, "\nPreparation plan:")
	for _, d := range resp.PreparationPlan {
		fmt.Fprintf(w, "  Day %d: %s\n", d.Day, d.Focus)
	}

	fmt.Fprintf(w, "\nPriority: %s\n%s\n", resp.ActionSummary.Priority, resp.ActionSummary.Recommendation)
	for _, item := range resp.ActionSummary.ActionItems {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
