package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type config struct {
	ListenAddr      string
	ServerName      string
	Handler         string
	ShutdownTimeout time.Duration
	LogFile         string
	LogMaxSizeMB    int
	LogMaxBackups   int
}

type fileConfig struct {
	ListenAddr      string `toml:"listen_addr"`
	ServerName      string `toml:"server_name"`
	Handler         string `toml:"handler"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
	LogFile         string `toml:"log_file"`
	LogMaxSizeMB    int    `toml:"log_max_size_mb"`
	LogMaxBackups   int    `toml:"log_max_backups"`
}

func defaultConfig() config {
	return config{
		ListenAddr:      "127.0.0.1:8080",
		ServerName:      "Persona/0.1",
		Handler:         "fixed",
		ShutdownTimeout: 5 * time.Second,
		LogMaxSizeMB:    64,
		LogMaxBackups:   3,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("listen_addr") {
		if addr := strings.TrimSpace(raw.ListenAddr); addr != "" {
			cfg.ListenAddr = addr
		}
	}
	if meta.IsDefined("server_name") {
		if name := strings.TrimSpace(raw.ServerName); name != "" {
			cfg.ServerName = name
		}
	}
	if meta.IsDefined("handler") {
		h := strings.TrimSpace(raw.Handler)
		switch h {
		case "fixed", "echo":
			cfg.Handler = h
		default:
			return config{}, fmt.Errorf("unknown handler %q", h)
		}
	}
	if meta.IsDefined("shutdown_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.ShutdownTimeout))
		if err != nil {
			return config{}, fmt.Errorf("parse shutdown_timeout: %w", err)
		}
		cfg.ShutdownTimeout = d
	}
	if meta.IsDefined("log_file") {
		cfg.LogFile = strings.TrimSpace(raw.LogFile)
	}
	if meta.IsDefined("log_max_size_mb") && raw.LogMaxSizeMB > 0 {
		cfg.LogMaxSizeMB = raw.LogMaxSizeMB
	}
	if meta.IsDefined("log_max_backups") && raw.LogMaxBackups > 0 {
		cfg.LogMaxBackups = raw.LogMaxBackups
	}
	return cfg, nil
}
