package commands

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/remindkit/remindkit/internal/api"
	"github.com/remindkit/remindkit/internal/mcp"
	"github.com/spf13/cobra"
)

// NewMcpCmd creates the mcp command for running and configuring the
// Model Context Protocol server.
func NewMcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP (Model Context Protocol) server management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start MCP server (stdio)",
		Run: func(cmd *cobra.Command, args []string) {
			if err := mcp.ServeStdio(api.NewClient()); err != nil {
				log.Fatalf("MCP server failed: %v", err)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print an MCP config example for clients",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := map[string]interface{}{
				"mcpServers": map[string]interface{}{
					"remindkit": map[string]interface{}{
						"command": "remindkit",
						"args":    []string{"mcp", "serve"},
					},
				},
			}
			b, _ := json.MarshalIndent(cfg, "", "  ")
			fmt.Println(string(b))
		},
	})

	return cmd
}
