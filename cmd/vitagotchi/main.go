package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/vitagotchi/internal/catalog"
	"github.com/jwalitptl/vitagotchi/internal/config"
	"github.com/jwalitptl/vitagotchi/internal/repository/jsonfile"
	"github.com/jwalitptl/vitagotchi/internal/session"
	"github.com/jwalitptl/vitagotchi/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	appLog := logger.NewLogger(&logger.Config{
		Level:  level,
		Output: os.Stderr,
	})

	if err := os.MkdirAll(cfg.Store.DataDir, 0o755); err != nil {
		appLog.Fatal(err, "failed to create data directory", "dir", cfg.Store.DataDir)
	}

	// Initialize stores
	patientStore := jsonfile.NewPatientStore(cfg.PatientPath(), appLog)
	counterStore := jsonfile.NewCounterStore(cfg.CounterPath(), cfg.Store.IDWidth, appLog)

	// Initialize session engine
	engine, err := session.NewEngine(patientStore, counterStore, catalog.New(), appLog)
	if err != nil {
		appLog.Fatal(err, "failed to initialize session engine")
	}

	console := newConsole(engine, os.Stdin, os.Stdout, appLog)
	if err := console.Run(); err != nil {
		appLog.Fatal(err, "console terminated")
	}
}

func parseLevel(s string) (logger.Level, error) {
	switch s {
	case "debug":
		return logger.DebugLevel, nil
	case "info", "":
		return logger.InfoLevel, nil
	case "warn":
		return logger.WarnLevel, nil
	case "error":
		return logger.ErrorLevel, nil
	}
	return logger.InfoLevel, errUnknownLevel(s)
}

type errUnknownLevel string

func (e errUnknownLevel) Error() string { return "unknown log level " + string(e) }
