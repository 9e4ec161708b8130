package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autoblog/config"
	"autoblog/internal/model"
)

// NewDB opens the configured SQL database, retrying while it comes up, and
// migrates the registry tables.
func NewDB(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, err
	}

	var db *gorm.DB
	operation := func() error {
		db, err = openDB(dialector)
		if err != nil {
			log.Warn().Err(err).Str("driver", cfg.Database.Driver).Msg("Attempt failed: could not connect to database")
			return err
		}
		return nil
	}

	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.InitialInterval = 1 * time.Second
	connectBackoff.MaxInterval = 10 * time.Second
	connectBackoff.MaxElapsedTime = 60 * time.Second

	log.Info().Str("driver", cfg.Database.Driver).Msg("Connecting to database...")
	if err := backoff.Retry(operation, connectBackoff); err != nil {
		return nil, fmt.Errorf("connect to %s database: %w", cfg.Database.Driver, err)
	}

	if err := db.AutoMigrate(&model.Settings{}, &model.Feed{}, &model.LLMConfig{}, &model.Automation{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connected and migrated")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			log.Info().Msg("Closing database connection")
			return sqlDB.Close()
		},
	})
	return db, nil
}

// openDB opens the pool and pings it. On failure the pool is closed again so
// that retries do not accumulate connections.
func openDB(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("open: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DatabaseDriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		return mysql.Open(dsn), nil
	case config.DatabaseDriverPostgres:
		dsn := cfg.URL
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
		}
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
