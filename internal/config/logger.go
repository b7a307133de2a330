package config

import (
	"context"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

// Init configures the shared logger and loads the local .env file if any.
func Init() {
	LoadEnv()

	Logger.SetOutput(os.Stdout)
	if strings.EqualFold(GetEnv("APP_ENV", "production"), "local") {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

func WithContext(ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return Logger
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return Logger.WithField("request_id", reqID)
	}
	return Logger
}
