package cmd

import (
	"log/slog"
	"os"

	"github.com/jcdickinson/llmsgen/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the manifest and reference lookup over MCP stdio",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, gen, err := loadGenerator()
		if err != nil {
			slog.Error("failed to initialize", "error", err)
			os.Exit(1)
		}

		// stdout carries the protocol; keep logs on stderr.
		server, err := mcp.NewServer(cfg, gen)
		if err != nil {
			slog.Error("failed to create MCP server", "error", err)
			os.Exit(1)
		}
		if err := server.Run(); err != nil {
			slog.Error("MCP server failed", "error", err)
			os.Exit(1)
		}
	},
}
