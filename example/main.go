package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/zenithpersona/persona/persona"
)

func main() {
	cfgPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	logger := buildLogger(cfg)
	defer func() { _ = logger.Sync() }()

	srv := persona.NewServer(
		pickHandler(cfg),
		persona.WithLogger(logger),
		persona.WithShutdownTimeout(cfg.ShutdownTimeout),
	)
	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
