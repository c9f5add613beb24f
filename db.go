package sqb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Executor runs named queries. *sqlx.DB and *sqlx.Tx satisfy it.
type Executor interface {
	sqlx.ExtContext
}

// DB executes builders with named parameters. Placeholders such as
// ":orderId" are bound from the params map and rewritten to the bind style
// of the underlying driver.
type DB struct {
	executor Executor
	logger   zerolog.Logger
}

func NewDB(executor Executor, logger zerolog.Logger) *DB {
	return &DB{executor: executor, logger: logger}
}

// Select runs b.Build() and scans every row into dest, a pointer to a
// slice of structs or scalars.
func (d *DB) Select(ctx context.Context, dest any, b *Builder, params map[string]any) error {
	return d.run(ctx, b.Build(), params, func(query string, args []any) error {
		return sqlx.SelectContext(ctx, d.executor, dest, query, args...)
	})
}

// Get runs b.Build() and scans the first row into dest. It returns
// sql.ErrNoRows when the result is empty.
func (d *DB) Get(ctx context.Context, dest any, b *Builder, params map[string]any) error {
	return d.run(ctx, b.Build(), params, func(query string, args []any) error {
		return sqlx.GetContext(ctx, d.executor, dest, query, args...)
	})
}

// Count runs b.BuildTotal(): the number of rows the unpaged statement
// yields, counting groups for grouped builders.
func (d *DB) Count(ctx context.Context, b *Builder, params map[string]any) (int64, error) {
	var n int64
	err := d.run(ctx, b.BuildTotal(), params, func(query string, args []any) error {
		return sqlx.GetContext(ctx, d.executor, &n, query, args...)
	})
	return n, err
}

// Page counts all matching rows, then scans the limited and offset rows
// into dest.
func (d *DB) Page(ctx context.Context, dest any, b *Builder, params map[string]any) (int64, error) {
	total, err := d.Count(ctx, b, params)
	if err != nil {
		return 0, err
	}

	if err := d.Select(ctx, dest, b, params); err != nil {
		return 0, err
	}
	return total, nil
}

// run binds params to the named placeholders of query in the driver's bind
// style and hands the result to fn.
func (d *DB) run(ctx context.Context, query string, params map[string]any, fn func(query string, args []any) error) error {
	if params == nil {
		params = map[string]any{}
	}

	start := time.Now()

	bound, args, err := d.executor.BindNamed(query, params)
	if err == nil {
		err = fn(bound, args)
	}

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		d.logger.Error().
			Err(err).
			Str("sql", query).
			Dur("duration", time.Since(start)).
			Msg("Query failed")
		return fmt.Errorf("query: %w", err)
	}

	d.logger.Debug().
		Str("sql", query).
		Int("params", len(params)).
		Dur("duration", time.Since(start)).
		Msg("Query executed")

	return err
}
