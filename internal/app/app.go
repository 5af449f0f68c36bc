// Package app assembles the application: configuration, logging, database,
// services, and the HTTP server with graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/grajto/vocab-trainer/internal/adapter/postgres"
	cardrepo "github.com/grajto/vocab-trainer/internal/adapter/postgres/card"
	deckrepo "github.com/grajto/vocab-trainer/internal/adapter/postgres/deck"
	logrepo "github.com/grajto/vocab-trainer/internal/adapter/postgres/reviewlog"
	staterepo "github.com/grajto/vocab-trainer/internal/adapter/postgres/reviewstate"
	"github.com/grajto/vocab-trainer/internal/config"
	"github.com/grajto/vocab-trainer/internal/service/deck"
	"github.com/grajto/vocab-trainer/internal/service/study"
	"github.com/grajto/vocab-trainer/internal/transport/rest"
	"github.com/grajto/vocab-trainer/migrations"
)

// Run is the application entry point. It blocks until ctx is cancelled
// (typically by SIGINT/SIGTERM) or the HTTP server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrations.Up(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	location, err := cfg.Study.Location()
	if err != nil {
		return fmt.Errorf("resolve timezone: %w", err)
	}

	txManager := postgres.NewTxManager(pool)
	cards := cardrepo.New(pool)
	decks := deckrepo.New(pool)
	states := staterepo.New(pool)
	reviewLogs := logrepo.New(pool)

	studySvc := study.NewService(logger, cards, states, reviewLogs, txManager, study.Config{
		NewCardsPerDay: cfg.Study.NewCardsPerDay,
		MinSessionSize: cfg.Study.MinSessionSize,
		MaxSessionSize: cfg.Study.MaxSessionSize,
		Timezone:       location,
	})
	deckSvc := deck.NewService(logger, decks, cards)

	router := rest.NewRouter(rest.RouterConfig{
		Logger:        logger,
		CORS:          cfg.CORS,
		HealthHandler: rest.NewHealthHandler(pool, BuildVersion()),
		DeckHandler:   rest.NewDeckHandler(deckSvc),
		StudyHandler:  rest.NewStudyHandler(studySvc),
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
