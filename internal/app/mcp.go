package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repolens/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server exposing scan and analysis tools",
	Long: `Start a Model Context Protocol stdio server that an MCP host can
query. The server exposes two tools:

  scan_directory   Walk a directory and return entry metadata with totals
  analyze_project  Scan a directory and return its project analysis

Scan defaults come from the configuration file; tool arguments override
them. Diagnostics go to stderr so stdout stays a clean JSON-RPC stream.

Example host configuration:
  {"mcpServers":{"repolens":{"command":"repolens","args":["mcp"]}}}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	srv := mcp.NewServer(cfg, appVersion, log)
	return srv.Run(cmd.Context(), os.Stdin, cmd.OutOrStdout())
}
