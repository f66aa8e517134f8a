package commands

import (
	"fmt"
	"log"

	"github.com/remindkit/remindkit/internal/config"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command for managing the CLI-side
// configuration file.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "CLI configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current CLI configuration",
		Run: func(cmd *cobra.Command, args []string) {
			path, err := config.GetConfigPath()
			if err != nil {
				log.Fatalf("Failed to resolve config path: %v", err)
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load config: %v", err)
			}

			fmt.Printf("Config file: %s\n", path)
			if cfg.APIBaseURL != "" {
				fmt.Printf("API base URL: %s\n", cfg.APIBaseURL)
			} else {
				fmt.Println("API base URL: (default http://localhost:8080/v1)")
			}
			if cfg.DefaultCategory != "" {
				fmt.Printf("Default category: %s\n", cfg.DefaultCategory)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set-api-url [url]",
		Short: "Set the API base URL the CLI talks to",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load config: %v", err)
			}
			cfg.APIBaseURL = args[0]
			if err := config.SaveConfig(cfg); err != nil {
				log.Fatalf("Failed to save config: %v", err)
			}
			fmt.Printf("✅ API base URL set to %s\n", args[0])
		},
	})

	return cmd
}
