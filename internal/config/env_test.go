package config_test

import (
	"testing"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

func TestGetEnv(t *testing.T) {
	t.Run("Set", func(t *testing.T) {
		t.Setenv("NB_TEST_VALUE", "redis:6379")
		if got := config.GetEnv("NB_TEST_VALUE", "fallback"); got != "redis:6379" {
			t.Errorf("expected redis:6379, got %q", got)
		}
	})

	t.Run("Default", func(t *testing.T) {
		t.Setenv("NB_TEST_VALUE", "")
		if got := config.GetEnv("NB_TEST_VALUE", "fallback"); got != "fallback" {
			t.Errorf("expected fallback, got %q", got)
		}
	})

	t.Run("Int", func(t *testing.T) {
		t.Setenv("NB_TEST_INT", "42")
		if got := config.GetEnvInt("NB_TEST_INT", 1); got != 42 {
			t.Errorf("expected 42, got %d", got)
		}
		t.Setenv("NB_TEST_INT", "nope")
		if got := config.GetEnvInt("NB_TEST_INT", 1); got != 1 {
			t.Errorf("expected default 1, got %d", got)
		}
	})
}
