package main

import (
	"log/slog"
	"os"

	"github.com/soocke/spot-marker-go/app"
	"github.com/soocke/spot-marker-go/config"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 after a quit, 1 when no frame source
// can be acquired or the frame loop ends on a read failure.
func run() int {
	// .env next to the working directory or the executable; real env wins.
	_ = config.LoadDotEnv(".env", config.ExecutableDir(".env"))

	cfgPath := config.ExecutableDir(config.DefaultFileName)
	cfg, cfgErr := config.Load(cfgPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", cfgErr)
	}

	c, err := app.BuildContainer(cfg, cfgPath, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return 1
	}
	if err := app.NewApplication("Spot Marker", c).Start(); err != nil {
		return 1
	}
	return 0
}
