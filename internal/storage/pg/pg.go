// Package pg bootstraps the connection pool to the relational backend.
// The schema and query logic live server-side; this layer only opens a
// tuned pool, probes connectivity once at startup, and hands the pool
// to whoever needs it.
package pg

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // Registers the PostgreSQL driver

	"github.com/giftharmony/giftharmony/internal/config"
	"github.com/giftharmony/giftharmony/internal/logger"
)

// ConnectionConfig holds database connection pool settings.
type ConnectionConfig struct {
	MaxOpenConns    int           // Maximum number of open connections to the database
	MaxIdleConns    int           // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration // Maximum amount of time a connection may be reused
	ConnMaxIdleTime time.Duration // Maximum amount of time a connection may be idle
}

// DefaultConnectionConfig returns sensible defaults for connection pooling.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

// LightweightConnectionConfig returns conservative pool settings for
// processes that only touch the database occasionally.
func LightweightConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

// Connect establishes and verifies a connection to PostgreSQL. TLS is
// required in production and disabled otherwise, keyed off cfg. The
// probe connection goes back to the pool once Ping returns; on probe
// failure the pool is closed and the error returned.
func Connect(cfg *config.Config, connCfg ConnectionConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Pg.Host, cfg.Pg.Port,
		cfg.Pg.User, cfg.Pg.Password,
		cfg.Pg.Dbname, cfg.SSLMode())

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(connCfg.MaxOpenConns)
	db.SetMaxIdleConns(connCfg.MaxIdleConns)
	db.SetConnMaxLifetime(connCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(connCfg.ConnMaxIdleTime)

	if err = db.Ping(); err != nil {
		db.Close()
		logger.Log.Error("database connectivity check failed",
			"host", cfg.Pg.Host, "port", cfg.Pg.Port, "dbname", cfg.Pg.Dbname, "error", err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Log.Info("connected to database",
		"host", cfg.Pg.Host, "port", cfg.Pg.Port, "dbname", cfg.Pg.Dbname, "sslmode", cfg.SSLMode())
	return db, nil
}
