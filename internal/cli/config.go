package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"fuzzdex/internal/config"
	"fuzzdex/internal/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "show configuration values",
	Run:   configShowExecute,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func configShowExecute(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		logger.PrintError("failed to load config: %v", err)
		return
	}

	logger.Header("Configuration")
	logger.KeyValue("search.max_distance", strconv.Itoa(cfg.Search.MaxDistance))
	logger.KeyValue("search.limit", strconv.Itoa(cfg.Search.Limit))
	logger.KeyValue("logging.level", cfg.Logging.Level)
	logger.KeyValue("logging.json", strconv.FormatBool(cfg.Logging.JSON))
	logger.Blank()
}
