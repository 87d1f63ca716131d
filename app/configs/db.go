package configs

import (
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Dialector(env ENV) (gorm.Dialector, error) {
	switch env.DBEngine {
	case "", "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.DBUser,
			env.DBPassword,
			env.DBHost,
			orDefault(env.DBPort, "3306"),
			env.DBName,
		)
		return mysql.Open(dsn), nil
	case "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			env.DBHost,
			env.DBUser,
			env.DBPassword,
			env.DBName,
			orDefault(env.DBPort, "5432"),
		)
		return postgres.Open(dsn), nil
	case "sqlite", "sqlite3":
		return sqlite.Open(orDefault(env.DBName, "robotics") + ".db?_foreign_keys=on"), nil
	default:
		return nil, fmt.Errorf("unsupported DB_ENGINE %q", env.DBEngine)
	}
}

// NewGormLogger routes gorm's own log lines into slog.
func NewGormLogger(logger *slog.Logger) gormlogger.Interface {
	return gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}

func OpenConnection(env ENV, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(env)
	if err != nil {
		return nil, err
	}

	maxRetries := env.DBMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	retryDelay := env.DBRetryDelay

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		logger.Info("connecting to database",
			slog.String("engine", env.DBEngine),
			slog.Int("attempt", i+1),
			slog.Int("max_attempts", maxRetries),
		)
		db, err := gorm.Open(dialector, &gorm.Config{Logger: NewGormLogger(logger), TranslateError: true})
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					logger.Info("database connection established")
					return db, nil
				}
			}
			lastErr = pingErr
			logger.Warn("database ping failed", slog.String("error", pingErr.Error()), slog.Duration("retry_in", retryDelay))
		} else {
			lastErr = err
			logger.Warn("failed to open gorm connection", slog.String("error", err.Error()), slog.Duration("retry_in", retryDelay))
		}

		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("connect to database after %d attempts: %w", maxRetries, lastErr)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
