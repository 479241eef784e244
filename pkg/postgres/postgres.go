package postgres

import (
	"context"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

type Config struct {
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"catalog"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// Configured reports whether a store endpoint was supplied at all.
// An empty host degrades the application to local-only seed data.
func (c Config) Configured() bool {
	return c.Host != ""
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

func NewPostgresDB(ctx context.Context, cfg *Config, migrations embed.FS) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("sqlx.Connect: %w", err)
	}
	return runMigrations(db, migrations)
}

// runMigrations applies pending migrations. On failure the pool is closed
// before returning so a failed init does not leak connections.
func runMigrations(db *sqlx.DB, migrations embed.FS) (*sqlx.DB, error) {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}
	if err := goose.Up(db.DB, "."); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("goose.Up: %w", err)
	}
	return db, nil
}
