package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kaepora/tracknote"
	"github.com/kaepora/tracknote/pkg/catalog"
	"github.com/kaepora/tracknote/pkg/core"
)

var (
	verbose     bool
	catalogPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tracknote",
	Short: "A shorthand note tracker for randomizer runs",
	Long: `Tracknote normalizes free-form randomizer shorthand ("deku ks",
"gv barren", "del kak bow") into structured, deduplicated notes grouped
by category.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to a custom catalog YAML file")
	cobra.CheckErr(viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")))
	cobra.CheckErr(viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog")))
}

// initConfig reads in the optional config file (~/.tracknote.yaml) and
// TRACKNOTE_* environment variables.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".tracknote")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix("TRACKNOTE")
	viper.AutomaticEnv()

	// Missing config files are fine; only flag real parse errors.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: unreadable config file: %v\n", err)
		}
	}
}

// newCatalog loads the configured catalog, falling back to the embedded
// Ocarina of Time data.
func newCatalog() (*catalog.Catalog, error) {
	path := viper.GetString("catalog")
	if path == "" {
		return catalog.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return catalog.Load(f)
}

// newTracker wires a tracker against the configured catalog.
func newTracker() (*core.Tracker, error) {
	cat, err := newCatalog()
	if err != nil {
		return nil, err
	}
	return tracknote.New(
		tracknote.WithCatalog(cat),
		tracknote.WithLogger(slog.Default()),
	), nil
}
