package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaepora/tracknote/pkg/core"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the known locations, items and reward checks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := newCatalog()
		if err != nil {
			return err
		}

		printEntities("Locations", cat.Locations())
		printEntities("Items", cat.Items())

		fmt.Println("Reward checks:")
		rewards := cat.Rewards()
		// Iterate the entity view to keep document order.
		for _, e := range cat.All() {
			if rewards.Contains(e.Name) {
				printEntity(e)
			}
		}
		return nil
	},
}

func printEntities(title string, entities []core.Entity) {
	fmt.Printf("%s:\n", title)
	for _, e := range entities {
		printEntity(e)
	}
	fmt.Println()
}

func printEntity(e core.Entity) {
	if len(e.Aliases) == 0 {
		fmt.Printf("  %s\n", e.Name)
		return
	}
	fmt.Printf("  %s (%s)\n", e.Name, strings.Join(e.Aliases, ", "))
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
