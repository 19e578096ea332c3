// Command migrate applies the embedded SQL migrations and exits.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/deppfellow/storefront-api/internal/config"
	"github.com/deppfellow/storefront-api/internal/database"
	"github.com/deppfellow/storefront-api/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLoggerWithService(cfg.Observability, nil)

	if err := database.Migrate(context.Background(), &log, cfg); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}
