// File: database/db.go
package database

import (
	"context"
	"log"
	"time"

	"rentaldesk/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the global Postgres connection pool.
var Pool *pgxpool.Pool

// InitDB opens the pgx pool against DATABASE_URL and verifies connectivity.
func InitDB() {
	cfg, err := pgxpool.ParseConfig(config.AppConfig.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to parse DATABASE_URL: %v", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Fatalf("Failed to ping Postgres: %v", err)
	}
	Pool = pool
}

// GetPool returns the global pool, initializing it on first use.
func GetPool() *pgxpool.Pool {
	if Pool == nil {
		InitDB()
	}
	return Pool
}

// CloseDB releases the pool on shutdown.
func CloseDB() {
	if Pool != nil {
		Pool.Close()
	}
}
