package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0-dev"

var (
	flagLogLevel  string
	flagLogFormat string
	flagStyles    string
	flagMaxDepth  int
	flagCacheSize int
	flagOffline   bool
	flagModel     string
	flagElementID string
	flagStrategy  string
	flagPrefix    string
	flagCase      string
	flagDebounce  int
)

func main() {
	// A .env next to the invocation is a convenience for GEMINI_API_KEY;
	// its absence is not an error.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "designaudit",
		Short: "Audit exported design documents for component readiness",
		Long: "designaudit analyzes exported design documents: token usage, layer naming,\n" +
			"component properties and states, producing reconciled component metadata.",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format: text, json")
	rootCmd.PersistentFlags().StringVar(&flagStyles, "styles", "", "Path to a style table JSON (style/variable id to name)")
	rootCmd.PersistentFlags().IntVar(&flagMaxDepth, "max-depth", 0, "Traversal depth cap (0 = default)")
	rootCmd.PersistentFlags().IntVar(&flagCacheSize, "cache-size", 0, "Analysis cache entries (0 = default)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Skip the advisory model; ground truth only")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Advisory model name")

	rootCmd.AddCommand(
		analyzeCmd(),
		tokensCmd(),
		namingCmd(),
		renameCmd(),
		recommendCmd(),
		serveCmd(),
		watchCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("designaudit %s\n", version)
		},
	}
}
