// Package main is the entry point for cubelight.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cubelight/internal/app"
	"github.com/Faultbox/cubelight/internal/config"
	"github.com/Faultbox/cubelight/internal/engine/material"
	"github.com/Faultbox/cubelight/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	if config.ListMaterials() {
		for _, name := range material.Names() {
			fmt.Println(name)
		}
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== cubelight ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveConfig() {
		save := cfg.Save
		if path := config.ConfigPath(); path != "" {
			save = func() error { return cfg.SaveTo(path) }
		}
		if err := save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved")
		return
	}

	if path := config.SnapshotPath(); path != "" {
		if err := app.Snapshot(cfg, path); err != nil {
			logger.Error("snapshot failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}

	err = a.Run()
	a.Close()
	if err != nil {
		logger.Error("app error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
