package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minaorangina/spacepalace/engine"
	"github.com/minaorangina/spacepalace/server"
	"github.com/minaorangina/spacepalace/store"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := engine.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}
	logger := cfg.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.NewServer(ctx, server.ServerOpts{
		Store:         store.NewInMemoryGameStore(),
		Logger:        logger,
		ComputerDelay: cfg.ComputerDelay,
		SafetyTimeout: cfg.SafetyTimeout,
		IdleTimeout:   cfg.IdleTimeout,
		Seed:          cfg.Seed,
	})
	s.Addr = cfg.Addr

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Error("shutdown failed")
		}
	}()

	logger.WithField("addr", cfg.Addr).Info("listening")
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Fatal("server stopped")
	}
}
