package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/talentbinder/dashboard/internal/api"
	"github.com/talentbinder/dashboard/internal/backend"
	"github.com/talentbinder/dashboard/internal/config"
	"github.com/talentbinder/dashboard/internal/logger"
)

const shutdownTimeout = 30 * time.Second

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	baseURL := os.Getenv("BACKEND_URL")
	if baseURL == "" {
		baseURL = conf.Backend.BaseURL
	}
	client := backend.NewClient(backend.Config{
		BaseURL:       baseURL,
		Timeout:       conf.Backend.Timeout,
		Retries:       conf.Backend.Retries,
		RetryInterval: conf.Backend.RetryInterval,
	})

	s := api.NewServer(conf, client)

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start the server -> %w", err)
	case sig := <-quit:
		zap.L().Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down gracefully -> %w", err)
	}

	return nil
}
