// Package cli implements fuzzdexctl's command tree: a small demo program
// that loads phrases from a CSV file, builds a fuzzdex.FuzzDex, and runs
// must/should queries against it from the terminal.
package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"fuzzdex/internal/config"
	"fuzzdex/internal/logger"
	"fuzzdex/internal/version"
)

var (
	verbose bool
	quiet   bool
)

func logLevelFromConfig() string {
	cfg, err := config.Load()
	if err != nil {
		return ""
	}
	return cfg.Logging.Level
}

var rootCmd = &cobra.Command{
	Use:   "fuzzdexctl",
	Short: "fuzzdexctl - a fuzzy phrase search demo",
	Long:  `fuzzdexctl builds an in-memory fuzzy-search index over short phrases and runs must/should queries against it.`,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, quiet, false, logLevelFromConfig())
	},

	Run: func(cmd *cobra.Command, args []string) {
		logger.Header("fuzzdexctl")
		logger.Print("Use 'fuzzdexctl --help' to see available commands")
		logger.Blank()
	},
}

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Show version information",
	Run:     versionCmdExecute,
}

// Execute runs the root command.
func Execute() error {
	logger.Init(verbose, quiet, false, "")
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode (only errors)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(searchCmd)
}

func versionCmdExecute(cmd *cobra.Command, args []string) {
	logger.Header("fuzzdexctl Version")
	logger.KeyValue("Version", version.Version)
	logger.KeyValue("Go Version", runtime.Version()[2:])
	logger.Blank()
}
