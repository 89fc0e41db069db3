package config

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.TokenTTL != time.Hour {
		t.Fatalf("unexpected default token ttl: %v", cfg.TokenTTL)
	}
	if cfg.LabelWorkers != 4 {
		t.Fatalf("unexpected default worker count: %d", cfg.LabelWorkers)
	}
	if cfg.Mongo.Database != "citysphere" {
		t.Fatalf("unexpected default mongo database: %q", cfg.Mongo.Database)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9999")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("LABEL_WORKERS", "8")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Port != "9999" {
		t.Fatalf("port override ignored: %q", cfg.Port)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("ttl override ignored: %v", cfg.TokenTTL)
	}
	if cfg.LabelWorkers != 8 {
		t.Fatalf("worker override ignored: %d", cfg.LabelWorkers)
	}
}
