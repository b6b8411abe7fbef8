package main

import (
	"os"

	"fuzzdex/internal/cli"
	"fuzzdex/internal/logger"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
