package main

import (
	"github.com/spf13/cobra"

	"placement-backend/internal/shared/config"
	"placement-backend/internal/shared/telemetry"
)

const app = "placement"

type rootOptions struct {
	cfg   config.Config
	debug bool
	json  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          app,
		Short:        "placement evaluates candidate readiness and serves the evaluation API",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.cfg = config.Load()
			level := opts.cfg.LogLevel
			if opts.debug {
				level = "debug"
			}
			logJSON := opts.cfg.LogJSON
			if cmd.Flags().Changed("json") {
				logJSON = opts.json
			}
			telemetry.Init(level, logJSON)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			telemetry.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	cmd.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "json format for logging")

	cmd.AddCommand(
		newServeCmd(opts),
		newEvaluateCmd(opts),
		newRoadmapCmd(),
		newPlanCmd(),
		newRequirementsCmd(opts),
	)
	return cmd
}
