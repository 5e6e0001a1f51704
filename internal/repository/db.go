package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-faster/errors"
	_ "github.com/go-sql-driver/mysql"
)

const pingTimeout = 5 * time.Second

// NewDB opens a MySQL connection pool for dsn and verifies it is reachable.
func NewDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping mysql")
	}

	return db, nil
}
