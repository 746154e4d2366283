package main

import (
	"fmt"
	"os"

	"himaya-assistant/internal/catalog"
	"himaya-assistant/internal/cli"
	"himaya-assistant/internal/common/config"
	"himaya-assistant/internal/common/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	c, err := catalog.LoadOrEmbedded(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	log := logger.NewNoOpLogger()
	if os.Getenv("HIMAYA_DEBUG") != "" {
		log = logger.NewStructured("debug", "console")
	}

	return cli.NewRootCmd(cli.NewApp(c, log)).Execute()
}
