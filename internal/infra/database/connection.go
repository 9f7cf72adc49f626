package database

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // don't forget this guy, nothing works without the driver
)

// NewDBConnection opens the pool and pings so we fail at boot, not on the
// first request.
func NewDBConnection(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return db, nil
}
