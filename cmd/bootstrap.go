package cmd

import (
	"context"
	"fmt"
	"time"

	"inventory-manager/core/cache"
	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/events"
	"inventory-manager/core/logger"
	"inventory-manager/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps bundles the dependencies shared by the commands.
type deps struct {
	cfg       *config.Config
	log       *zap.Logger
	db        *gorm.DB
	archiver  *storage.Archiver
	cache     cache.Cache
	publisher events.Publisher
}

// loadDeps loads configuration and builds the logger.
func loadDeps() (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &deps{cfg: cfg, log: l, cache: cache.Nop{}, publisher: events.Nop{}}, nil
}

// connectDatabase opens the catalog database.
func (d *deps) connectDatabase() error {
	db, err := database.Connect(d.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	d.db = db
	return nil
}

// openArchiver builds the archiver when object storage is enabled.
func (d *deps) openArchiver() error {
	if !d.cfg.Storage.Enabled {
		return nil
	}
	client, err := storage.NewClient(d.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}
	d.archiver = storage.NewArchiver(client, d.cfg.Storage.Bucket)
	return nil
}

// connectArchiver opens the archiver and makes sure its bucket exists.
func (d *deps) connectArchiver(ctx context.Context) error {
	if err := d.openArchiver(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return d.archiver.EnsureBucket(ctx)
}

// connectSideEffects wires the report cache and the event publisher.
// Either one falls back to its no-op version when it cannot connect.
func (d *deps) connectSideEffects() {
	if c, err := cache.New(d.cfg.Cache); err != nil {
		d.log.Warn("Report cache disabled", zap.Error(err))
	} else {
		d.cache = c
	}

	if p, err := events.New(d.cfg.Events); err != nil {
		d.log.Warn("Event publishing disabled", zap.Error(err))
	} else {
		d.publisher = p
	}
}

func (d *deps) close() {
	if err := d.publisher.Close(); err != nil {
		d.log.Warn("Failed to close event publisher", zap.Error(err))
	}
	if d.db != nil {
		if sqlDB, err := d.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = d.log.Sync()
}
