package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("unexpected token ttl: %s", cfg.TokenTTL)
	}
	if cfg.Mongo.Database != "urcontent" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected store defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if cfg.Profile.CacheTTL != 10*time.Minute || cfg.Audit.Workers != 4 || cfg.Audit.DedupTTL != time.Hour {
		t.Fatalf("unexpected service defaults: %+v %+v", cfg.Profile, cfg.Audit)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":        "s3cret",
		"ENV":               "production",
		"PORT":              "9090",
		"PROFILE_CACHE_TTL": "30s",
		"AUDIT_WORKERS":     "16",
		"REDIS_DB":          "2",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.IsDevelopment() {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.Profile.CacheTTL != 30*time.Second || cfg.Audit.Workers != 16 || cfg.Redis.DB != 2 {
		t.Fatalf("unexpected overrides: %+v %+v %+v", cfg.Profile, cfg.Audit, cfg.Redis)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error when JWT_SECRET is missing")
	}
}
