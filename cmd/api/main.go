// Command api serves the storefront HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/storefront-api/internal/config"
	"github.com/deppfellow/storefront-api/internal/database"
	"github.com/deppfellow/storefront-api/internal/handler"
	"github.com/deppfellow/storefront-api/internal/logger"
	"github.com/deppfellow/storefront-api/internal/repository"
	"github.com/deppfellow/storefront-api/internal/router"
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/deppfellow/storefront-api/internal/service"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	err = run(cfg, &log, loggerService)
	loggerService.Shutdown()
	if err != nil {
		log.Error().Stack().Err(err).Msg("api stopped")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Primary.Env != "local" {
		if err := database.Migrate(ctx, log, cfg); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	srv, err := server.New(cfg, log, loggerService)
	if err != nil {
		return err
	}

	services := service.NewServices(repository.NewRepositories(srv.DB.ORM))
	srv.SetupHTTPServer(router.NewRouter(srv, handler.NewHandlers(srv, services)))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		return errors.Join(err, srv.Shutdown(context.Background()))
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
