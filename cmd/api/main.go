package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/container"
	"github.com/saulo-duarte/neurobridge-lambda/internal/router"
)

// @title NeuroBridge API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := container.New()
	defer c.Close()

	if err := c.StartWorkers(ctx); err != nil {
		config.Logger.WithError(err).Fatal("failed to start workers")
	}

	port := config.GetEnv("PORT", "8080")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router.New(c.Router()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		config.Logger.WithField("port", port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	config.Logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.WithError(err).Error("server forced to shutdown")
	}
}
