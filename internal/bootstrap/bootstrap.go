// Package bootstrap turns a loaded Config into the logger and database the
// commands run with.
package bootstrap

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/fekuna/omnipos-catalog-service/config"
	"github.com/fekuna/omnipos-catalog-service/internal/database"
	"github.com/fekuna/omnipos-catalog-service/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadConfig reads envFile into the environment when it exists and then
// builds the Config. Variables already set win over the file.
func LoadConfig(envFile string) (*config.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return config.LoadEnv(), nil
}

func NewLogger(cfg *config.Config) logger.ZapLogger {
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	return logger.NewZapLogger(logConfig)
}

func DatabaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		Path:            cfg.SQLite.Path,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	}
}

// OpenDatabase connects and, when migrate is set, applies pending migrations.
func OpenDatabase(ctx context.Context, cfg *config.Config, migrate bool, log logger.ZapLogger) (*sqlx.DB, error) {
	db, err := database.Open(ctx, DatabaseConfig(cfg))
	if err != nil {
		return nil, err
	}
	log.Info("Connected to database", zap.String("driver", db.DriverName()))

	if !migrate {
		return db, nil
	}

	applied, err := database.Migrate(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if len(applied) > 0 {
		log.Info("Applied migrations", zap.Int64s("versions", applied))
	} else {
		log.Debug("Schema up to date")
	}
	return db, nil
}
