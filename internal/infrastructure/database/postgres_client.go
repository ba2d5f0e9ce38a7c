package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ConnectPostgres opens the relational store using environment variables.
//
// Supported env vars (local-friendly):
//   - DATABASE_URL (takes precedence when set)
//   - DB_HOST, DB_PORT (default: 5432), DB_USER, DB_PASSWORD, DB_NAME,
//     DB_SSLMODE (default: disable)
func ConnectPostgres() *sql.DB {
	db, err := OpenFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	return db
}

func OpenFromEnv(ctx context.Context) (*sql.DB, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		host := os.Getenv("DB_HOST")
		user := os.Getenv("DB_USER")
		dbname := os.Getenv("DB_NAME")
		if host == "" || user == "" || dbname == "" {
			return nil, fmt.Errorf("database connection variables not set: set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
		}
		connStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host,
			getenvDefault("DB_PORT", "5432"),
			user,
			os.Getenv("DB_PASSWORD"),
			dbname,
			getenvDefault("DB_SSLMODE", "disable"),
		)
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
