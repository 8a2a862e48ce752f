package main

import (
	"github.com/spf13/cobra"

	"github.com/bft-labs/bigadd/internal/mcpserver"
)

func (a *app) mcpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the add and sum tools over the Model Context Protocol (stdio)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.serveMetrics(cmd.Context())

			a.logger.Info("starting MCP server")
			return mcpserver.New(getVersion(), a.calc, a.logger).Serve()
		},
	}
}
