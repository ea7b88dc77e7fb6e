package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"romantic-api/core/constants"
	"romantic-api/core/logger"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type IDatabase interface {
	ExecContext(ctx context.Context, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	SQLx() *sqlx.DB
}

type Database struct {
	db   *sql.DB
	sqlx *sqlx.DB
}

type DatabaseConfig struct {
	Path string
}

var instance *Database

func init() {
	// modernc registers as "sqlite"; teach sqlx its bindvar style.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

func GetDB() IDatabase {
	return instance
}

func InitDB(config DatabaseConfig) (Database, error) {
	logger.Info("Initializing database...", "path", config.Path)

	if config.Path != ":memory:" && !strings.HasPrefix(config.Path, "file:") {
		if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
			return Database{}, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlxDB, err := sqlx.Connect("sqlite", config.Path)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		return Database{}, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB := sqlxDB.DB
	sqlDB.SetMaxOpenConns(constants.DatabaseMaxOpenConns)
	sqlDB.SetMaxIdleConns(constants.DatabaseMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(constants.DatabaseConnMaxLifetime) * time.Minute)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		fmt.Sprintf("PRAGMA busy_timeout = %d", constants.DatabaseBusyTimeout),
		"PRAGMA journal_mode = WAL",
	}
	for _, pragma := range pragmas {
		if _, err := sqlDB.Exec(pragma); err != nil {
			logger.Error("Failed to apply pragma", "pragma", pragma, "error", err)
			return Database{}, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	db := Database{
		db:   sqlDB,
		sqlx: sqlxDB,
	}

	if err := db.migrate(); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		return Database{}, fmt.Errorf("failed to run migrations: %w", err)
	}

	instance = &db
	logger.Info("Database initialized successfully", "path", config.Path)
	return db, nil
}

func (d *Database) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			start TEXT NOT NULL,
			end TEXT NOT NULL,
			notes TEXT NOT NULL,
			tag TEXT NOT NULL,
			reminder_method TEXT,
			reminder_minutes INTEGER,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS photos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			taken_at TEXT,
			file_name TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			url TEXT NOT NULL,
			thumbnail_url TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reminder_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			event_id TEXT NOT NULL,
			channel TEXT NOT NULL,
			sent_at TEXT NOT NULL,
			status TEXT NOT NULL,
			details TEXT,
			FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
		)`,
	}

	for _, stmt := range statements {
		if _, err := d.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) ExecContext(ctx context.Context, query string, args ...any) error {
	_, err := d.sqlx.ExecContext(ctx, query, args...)
	return err
}

func (d *Database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.GetContext(ctx, dest, query, args...)
}

func (d *Database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.sqlx.SelectContext(ctx, dest, query, args...)
}

func (d *Database) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *Database) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.db.QueryContext(ctx, query, args...)
}

func (d *Database) SQLx() *sqlx.DB {
	return d.sqlx
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	return d.sqlx.Close()
}
