// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
)

const defaultTxTimeout = time.Second * 60

type unitOfWorkContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// unitOfWork is the transaction shared by every Statement issued inside WithTx.
type unitOfWork struct {
	tx *sql.Tx
}

func unitOfWorkFromContext(ctx context.Context) *unitOfWork {
	if uow, ok := ctx.Value(unitOfWorkContextKey{}).(*unitOfWork); ok {
		return uow
	}
	return nil
}

// InTx reports whether ctx belongs to a WithTx unit of work.
func InTx(ctx context.Context) bool {
	return unitOfWorkFromContext(ctx) != nil
}

type DBClient struct {
	// pool is kept to close the native pgx pool on shutdown
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement provides a StatementBuilderType configured to use the DBClient's database connection.
// Inside WithTx the builder runs on the unit-of-work transaction.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	if uow := unitOfWorkFromContext(ctx); uow != nil {
		return builder.RunWith(uow.tx)
	}

	return builder.RunWith(d.db)
}

// WithTx runs fn as a single unit of work.
// Every Statement issued with the context handed to fn shares one transaction,
// committed when fn returns nil and rolled back otherwise. Nested calls join
// the outer unit of work. fn is not called when the transaction cannot begin.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	// Detached from request cancellation so a client disconnect cannot roll
	// back a unit of work mid-flight; bounded by defaultTxTimeout instead.
	beginCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTxTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(beginCtx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		d.logger.Errorf("failed to begin transaction: %v", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			d.logger.Errorf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(context.WithValue(ctx, unitOfWorkContextKey{}, &unitOfWork{tx: tx})); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	return nil
}

func (d *DBClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClientFromDB wraps an already opened database handle.
func NewDBClientFromDB(db *sql.DB, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}

// NewDBClient opens a pgx pool for cfg and exposes it through database/sql.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %w", err)
		}
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	d := NewDBClientFromDB(sqlDB, tracer, monitor, logger)
	d.pool = pool

	return d, nil
}
