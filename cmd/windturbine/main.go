// Package main is the entry point for the wind turbine viewer.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/windturbine/internal/app"
	"github.com/Faultbox/windturbine/internal/config"
	"github.com/Faultbox/windturbine/internal/engine/window"
	"github.com/Faultbox/windturbine/internal/logger"
)

// backendMessage is shown when no OpenGL context can be created.
const backendMessage = "Sorry, OpenGL is required but is not available."

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.DumpPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	fileCfg := logger.FileConfig{}
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
		fileCfg.MaxSizeMB = cfg.Logging.MaxSizeMB
		fileCfg.MaxBackups = cfg.Logging.MaxBackups
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("=== Wind Turbine ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	code := run(cfg)
	logger.Sync()
	os.Exit(code)
}

// run returns the process exit code so deferred cleanup runs first.
func run(cfg *config.Config) int {
	a, err := app.New(cfg)
	if errors.Is(err, window.ErrBackendUnavailable) {
		logger.Error("graphics backend unavailable", zap.Error(err))
		dialog.Message("%s", backendMessage).Title(app.Title).Error()
		return 1
	}
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
