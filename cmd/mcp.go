package cmd

import (
	"github.com/huangsam/slogate/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Slogate MCP server",
	Long:  `Launch an MCP server that allows AI agents to run release gate checks via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep setup output off stdout since stdio carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, historyManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
