package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gamelibrary/backend/internal/config"
	"gamelibrary/backend/internal/models"
)

// Dialector builds the gorm dialector for the configured driver.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		port := cfg.DBPort
		if port == 0 {
			port = 5432
		}
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			cfg.DBServer, cfg.DBUser, cfg.DBPassword, cfg.DBName, port, cfg.DBSSLMode,
		)
		return postgres.Open(dsn), nil
	case config.DriverSQLServer:
		host := cfg.DBServer
		if cfg.DBPort != 0 {
			host += ":" + strconv.Itoa(cfg.DBPort)
		}
		q := url.Values{}
		q.Set("database", cfg.DBName)
		q.Set("encrypt", "true")
		q.Set("TrustServerCertificate", "true")
		u := url.URL{
			Scheme:   "sqlserver",
			User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
			Host:     host,
			RawQuery: q.Encode(),
		}
		return sqlserver.Open(u.String()), nil
	case config.DriverSQLite:
		dsn := cfg.DBName
		if dsn == "" {
			dsn = "file:gamelibrary.db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.DBDriver)
	}
}

// NewGormLogger routes gorm's SQL log through zap.
func NewGormLogger(log *zap.Logger) logger.Interface {
	return logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Connect opens the connection pool and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	log.Info("database connection established",
		zap.String("driver", cfg.DBDriver),
		zap.String("server", cfg.DBServer),
		zap.String("database", cfg.DBName),
	)

	if cfg.DBAutoMigrate {
		if err := Migrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
		log.Info("database migrated successfully")
	}

	return db, nil
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
