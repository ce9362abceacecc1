package main

import (
	"cdr.dev/slog"
	"github.com/spf13/cobra"

	"github.com/scrawl-labs/scrawl/lib/log"
	"github.com/scrawl-labs/scrawl/scserver"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info(cmd.Context(), "listening", slog.F("addr", addr))
			return scserver.New().ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
