package main

import (
	"fmt"
	"os"

	"github.com/pageza/alimentos/backend/config"
	"github.com/pageza/alimentos/backend/internal/database"
	"github.com/pageza/alimentos/backend/internal/logging"
)

// Creates alimentos.db and its table. Run once before the first server start;
// running it again fails because the table already exists.
func main() {
	cfg := config.New()

	log, err := logging.NewWithWriter(os.Stdout, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.Infof("Provisioning database %s", cfg.DBPath)
	if err := database.Provision(cfg.DBPath); err != nil {
		log.Errorf("Provisioning failed: %v", err)
		os.Exit(1)
	}
	log.Info("Table alimentos created")
}
