package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaepora/tracknote"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tracknote",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tracknote version %s\n", tracknote.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
