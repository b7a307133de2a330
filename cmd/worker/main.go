package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
	"github.com/saulo-duarte/neurobridge-lambda/internal/container"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := container.New()
	defer c.Close()

	if c.InProcessJobs() {
		config.Logger.Warn("RABBITMQ_URL is not set, nothing to consume")
		return
	}
	if err := c.StartWorkers(ctx); err != nil {
		config.Logger.WithError(err).Fatal("failed to start workers")
	}

	config.Logger.Info("worker consuming jobs")
	<-ctx.Done()
	config.Logger.Info("worker stopping")
}
