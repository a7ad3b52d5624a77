package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go-order-tracker/pkg/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and tunes the connection pool.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel(cfg.Database.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  cfg.App.Env != "production",
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		PrepareStmt:    false,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Database.Driver == "sqlite" {
		// SQLite only supports one writer at a time
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	return db, nil
}

// Dialector picks the gorm driver for cfg.Database.Driver. DATABASE_URL wins over
// the individual host/user/... settings.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	d := cfg.Database
	switch d.Driver {
	case "", "postgres":
		dsn := d.URL
		if dsn == "" {
			dsn = fmt.Sprintf(
				"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
				d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode, d.TimeZone,
			)
		}
		return postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // Disables implicit prepared statements for pgbouncer/Supabase transaction mode
		}), nil
	case "sqlite":
		dsn := d.URL
		if dsn == "" {
			dsn = d.Name + ".db"
		}
		return sqlite.Open(dsn + sqliteParams(dsn)), nil
	case "mysql":
		dsn := d.URL
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True",
				d.User, d.Password, d.Host, d.Port, d.Name)
		}
		return mysql.Open(dsn + mysqlParams(dsn)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", d.Driver)
	}
}

// sqliteParams enables foreign keys unless the DSN already configures them.
func sqliteParams(dsn string) string {
	if strings.Contains(dsn, "_fk=") || strings.Contains(dsn, "_foreign_keys=") {
		return ""
	}
	if strings.Contains(dsn, "?") {
		return "&_fk=1"
	}
	return "?_fk=1"
}

// mysqlParams pins the session to UTC unless the DSN sets loc itself. Order
// dates are written as UTC midnight; converting them to a zone west of UTC
// would store the previous day in the DATE column.
func mysqlParams(dsn string) string {
	if strings.Contains(dsn, "loc=") {
		return ""
	}
	if strings.Contains(dsn, "?") {
		return "&loc=UTC"
	}
	return "?loc=UTC"
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
