package commands

import (
	"fmt"
	"log"

	"github.com/remindkit/remindkit/internal/api"
	"github.com/remindkit/remindkit/pkg/models"
	"github.com/spf13/cobra"
)

// NewCategoryCmd creates the category command with all subcommands
func NewCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Short:   "Category management commands",
		Aliases: []string{"categories"},
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Short:   "List the category catalog",
		Aliases: []string{"ls"},
		Run: func(cmd *cobra.Command, args []string) {
			names, err := api.NewClient().ListCategories()
			if err != nil {
				log.Fatalf("Failed to fetch categories: %v", err)
			}

			fmt.Println("📂 Categories")
			for _, name := range names {
				if models.IsBuiltinCategory(name) {
					fmt.Printf("   %s (built-in)\n", name)
				} else {
					fmt.Printf("   %s\n", name)
				}
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create [name]",
		Short: "Create a custom category",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := api.NewClient().CreateCategory(args[0]); err != nil {
				log.Fatalf("Failed to create category: %v", err)
			}
			fmt.Printf("✅ Created category %q\n", args[0])
		},
	})

	return cmd
}
