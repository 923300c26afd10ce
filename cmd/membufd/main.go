package main

import (
	"flag"

	"membuf/internal/config"
	"membuf/internal/engine"
	"membuf/internal/router"
	"membuf/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults apply when empty)")
	flag.Parse()

	var (
		conf *config.Config
		err  error
	)
	if *configPath != "" {
		conf, err = config.FromFile(*configPath)
	} else {
		conf, err = config.NewConfig()
	}
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	logger.InitLogger(conf.LogLevel, conf.LogFile)
	defer logger.Sync()

	e, err := engine.New(conf)
	if err != nil {
		logger.Fatal("failed to build engine", "error", err)
	}
	defer e.Close()

	r := router.New(e)

	logger.Info("membufd listening",
		"addr", conf.ListenAddr,
		"capacity", conf.Capacity,
		"filter", conf.FilterEnabled,
	)
	if err := r.Run(conf.ListenAddr); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
