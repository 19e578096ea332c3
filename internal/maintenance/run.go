package maintenance

import (
	"context"
	"fmt"
	"os"

	"github.com/deppfellow/storefront-api/internal/config"
	"github.com/deppfellow/storefront-api/internal/database"
	"github.com/deppfellow/storefront-api/internal/logger"
	"github.com/deppfellow/storefront-api/internal/sqlerr"
	"github.com/rs/zerolog"
)

// Task is the body of a maintenance binary.
type Task func(ctx context.Context, cfg *config.Config, db *database.Database) error

// Run loads the config, opens the database, runs task and closes the
// database again, also when task fails. It returns the process exit code.
//
// The logger is stored in the task's context and carries script=name.
func Run(name string, task Task) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}

	log := logger.NewLoggerWithService(cfg.Observability, nil).With().Str("script", name).Logger()

	if err := run(log.WithContext(context.Background()), cfg, &log, task); err != nil {
		sqlerr.LogFields(log.Error().Err(err), err).
			Str("reason", sqlerr.Describe(err)).
			Msg("script failed")
		return 1
	}

	log.Info().Msg("script finished")
	return 0
}

func run(ctx context.Context, cfg *config.Config, log *zerolog.Logger, task Task) error {
	db, err := database.New(cfg, log, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	return task(ctx, cfg, db)
}
