package postgres

import (
	"embed"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func TestRunMigrationsFailureClosesPool(t *testing.T) {
	cfg := Config{Host: "127.0.0.1", Port: "1", User: "nobody", DBName: "nowhere", SSLMode: "disable"}
	// Open does not dial, so the pool exists but every migration attempt
	// against the unreachable endpoint fails.
	db, err := sqlx.Open("pgx", cfg.DSN())
	require.NoError(t, err)

	_, err = runMigrations(db, embed.FS{})
	require.Error(t, err)
	require.ErrorContains(t, db.Ping(), "database is closed")
}

func TestConfigured(t *testing.T) {
	require.False(t, Config{}.Configured())
	require.True(t, Config{Host: "db.local"}.Configured())
}
