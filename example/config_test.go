package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:8080" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.Handler != "fixed" {
		t.Fatalf("unexpected handler: %q", cfg.Handler)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected shutdown timeout: %v", cfg.ShutdownTimeout)
	}
	if cfg.LogFile != "" {
		t.Fatalf("unexpected log file: %q", cfg.LogFile)
	}
}

func TestLoadConfigExample(t *testing.T) {
	cfg, err := loadConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load example config: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:8080" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.ServerName != "Persona/0.1" {
		t.Fatalf("unexpected server name: %q", cfg.ServerName)
	}
	if cfg.Handler != "echo" {
		t.Fatalf("unexpected handler: %q", cfg.Handler)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("unexpected shutdown timeout: %v", cfg.ShutdownTimeout)
	}
	if cfg.LogFile != "local/persona.log" {
		t.Fatalf("unexpected log file: %q", cfg.LogFile)
	}
	if cfg.LogMaxSizeMB != 32 || cfg.LogMaxBackups != 2 {
		t.Fatalf("unexpected log rotation settings: %d/%d", cfg.LogMaxSizeMB, cfg.LogMaxBackups)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "bad_duration.toml")
	if err := os.WriteFile(path, []byte("shutdown_timeout = \"soon\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatalf("expected error for bad duration")
	}

	path = filepath.Join(dir, "bad_handler.toml")
	if err := os.WriteFile(path, []byte("handler = \"teapot\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Fatalf("expected error for unknown handler")
	}
}
