// Package database hands out Postgres connections to the repository layer.
// Every repository operation acquires its own connection and releases it
// before returning; pooling is left to pgxpool.
package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrMissingDSN is returned by New when no connection string is configured.
var ErrMissingDSN = errors.New("database: connection string not configured")

// Conn is a single acquired connection. The caller owns it and must call
// Release exactly once, on every exit path.
// *pgxpool.Conn satisfies this interface.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
	Release()
}

// Connector produces connections on demand. Repositories depend on this
// interface so tests can hand them a mock connection.
type Connector interface {
	Acquire(ctx context.Context) (Conn, error)
}

// Options tunes the underlying pool. The zero value keeps pgx defaults.
type Options struct {
	MaxConns int32
}

// Provider is the production Connector backed by a pgxpool.Pool.
type Provider struct {
	pool *pgxpool.Pool
}

// New parses dsn, opens the pool and verifies the database is reachable.
// It fails fast: an empty dsn, an unparsable dsn or a failed ping all return
// an error and no Provider.
func New(ctx context.Context, dsn string, opts Options) (*Provider, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, ErrMissingDSN
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("database.New: parse config: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}

	// NewWithConfig does not open connections immediately; the ping does.
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database.New: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database.New: ping: %w", err)
	}

	return &Provider{pool: pool}, nil
}

// Acquire returns a connection from the pool. The caller must Release it.
func (p *Provider) Acquire(ctx context.Context) (Conn, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("database.Provider.Acquire: %w", err)
	}
	return conn, nil
}

// Ping checks that the database still answers.
func (p *Provider) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close closes every pooled connection. Acquire must not be called afterwards.
func (p *Provider) Close() {
	p.pool.Close()
}
