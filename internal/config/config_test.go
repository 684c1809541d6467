package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{"DATABASE_URI": "postgres://localhost/tezcart"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":8080" {
		t.Fatalf("unexpected run address: %s", cfg.RunAddress)
	}
	if cfg.SessionTTL != 7*24*time.Hour {
		t.Fatalf("unexpected session ttl: %v", cfg.SessionTTL)
	}
	if cfg.StoreOrigin != "http://localhost:3000" || cfg.AdminOrigin != "http://localhost:3001" {
		t.Fatalf("unexpected origins: %s %s", cfg.StoreOrigin, cfg.AdminOrigin)
	}
	if cfg.SweepInterval != time.Minute {
		t.Fatalf("unexpected sweep interval: %v", cfg.SweepInterval)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %v", cfg.ShutdownTimeout)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error for missing database URI")
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	env := map[string]string{
		"RUN_ADDRESS":  ":9000",
		"DATABASE_URI": "postgres://env/db",
	}
	args := []string{"-a", ":7070", "-d", "postgres://flag/db", "-session-ttl", "1h", "-sweep-interval", "30s"}

	cfg, err := load(args, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":7070" {
		t.Fatalf("expected flag to win, got %s", cfg.RunAddress)
	}
	if cfg.DatabaseURI != "postgres://flag/db" {
		t.Fatalf("expected flag to win, got %s", cfg.DatabaseURI)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("unexpected session ttl: %v", cfg.SessionTTL)
	}
	if cfg.SweepInterval != 30*time.Second {
		t.Fatalf("unexpected sweep interval: %v", cfg.SweepInterval)
	}
}

func TestLoadEnvironmentValues(t *testing.T) {
	env := map[string]string{
		"DATABASE_URI":          "postgres://env/db",
		"SESSION_SECRET":        "env-secret",
		"STORE_ORIGIN":          "https://shop.example.com",
		"ADMIN_ORIGIN":          "https://admin.example.com",
		"COUPON_SWEEP_INTERVAL": "5m",
	}

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SessionSecret != "env-secret" {
		t.Fatalf("unexpected secret: %s", cfg.SessionSecret)
	}
	if cfg.StoreOrigin != "https://shop.example.com" {
		t.Fatalf("unexpected store origin: %s", cfg.StoreOrigin)
	}
	if cfg.SweepInterval != 5*time.Minute {
		t.Fatalf("unexpected sweep interval: %v", cfg.SweepInterval)
	}
}

func TestLoadSessionSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":        "postgres://env/db",
		"SESSION_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SessionSecret != "file-secret" {
		t.Fatalf("unexpected secret: %s", cfg.SessionSecret)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	if _, err := load([]string{"-session-ttl", "soon"}, lookupFrom(map[string]string{"DATABASE_URI": "x"})); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
