package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaepora/tracknote/internal/render"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [line...]",
	Short: "Parse one note line and print the resolved record",
	Long: `Parse runs a single line through the resolution engine without storing
anything, useful for checking how shorthand will be understood.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tracker, err := newTracker()
		if err != nil {
			return err
		}

		rec := tracker.Preview(strings.Join(args, " "))

		if parseJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(rec)
		}

		fmt.Printf("place:      %s\n", rec.Place)
		fmt.Printf("item:       %s\n", rec.Item)
		fmt.Printf("check:      %s\n", rec.Check)
		fmt.Printf("category:   %s\n", rec.Category)
		if rec.Annotation != "" {
			fmt.Printf("annotation: %s\n", rec.Annotation)
		}
		if rec.Deletion {
			fmt.Println("deletion:   true")
		}
		if row := render.Row(rec); row != "" {
			fmt.Println(row)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output in JSON format")
}
