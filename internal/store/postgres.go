// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store provides the PostgreSQL connection assembly used by the
// configuration check command. It opens and pings the database described by
// the resolved settings; it deliberately contains no query layer.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver

	"github.com/MKhiriev/go-deploy-config/internal/config"
	"github.com/MKhiriev/go-deploy-config/internal/logger"
)

// DB wraps the database/sql handle together with the error classifier used
// to distinguish transient connection problems from configuration mistakes.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a connection pool to the PostgreSQL database
// described by cfg and verifies it with [DB.Check] bounded by ctx.
func NewConnectPostgres(ctx context.Context, cfg config.Database, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	// ping database
	if err := db.Check(ctx); err != nil {
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}

// Check verifies the connection with a ping bounded by ctx.
//
// On failure the error is classified before being returned, so the log
// tells apart "retry may succeed" (transient network or server-starting
// conditions) from "fix your configuration".
func (db *DB) Check(ctx context.Context) error {
	err := db.PingContext(ctx)
	if err != nil {
		retryable := db.errorClassificator.Classify(err) == Retryable
		db.logger.Err(err).
			Str("func", "Check").
			Bool("retryable", retryable).
			Msg("error connecting database (ping)")
		return err
	}

	return nil
}
