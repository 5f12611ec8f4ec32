package cli

import (
	"fmt"

	"github.com/farellandr/gigbook/config"
	"github.com/farellandr/gigbook/internal/logger"
	"github.com/farellandr/gigbook/internal/store"
)

// app is what every command that touches the database needs. close releases
// the store and then the log file.
type app struct {
	cfg   *config.Config
	log   logger.LoggerService
	store *store.Store
}

func openApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLoggerService("gigbook", cfg.Log)

	gormLog := logger.NewGormLogger(log.Named("gorm"), cfg.Database.GormLogLevel())
	db, err := config.OpenDatabase(cfg.Database, gormLog)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Debug("connected to %s database", cfg.Database.Driver)

	return &app{cfg: cfg, log: log, store: store.New(db)}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.log.Error("failed to close database: %v", err)
	}
	a.log.Close()
}
