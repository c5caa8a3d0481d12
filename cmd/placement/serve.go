package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"placement-backend/internal/bootstrap"
	"placement-backend/internal/shared/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the evaluation HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := root.cfg
			if port != "" {
				cfg.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := bootstrap.Build(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			return server.Run(ctx, server.Addr(cfg.Port), a.Router)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}
