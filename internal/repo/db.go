// Package repo contains all database access logic for the hotel pricing API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/pkordes/hotel-pricing/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// NUMERIC columns are selected as ::text and parsed here so no precision is
// lost through float conversion.
func parseNumeric(column, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse %s %q: %w", column, raw, err)
	}
	return d, nil
}

// count runs a SELECT count(*) style query returning a single bigint.
func count(ctx context.Context, db db, q string, args ...any) (int64, error) {
	var n int64
	if err := db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SQLSTATE codes mapped to domain.ErrValidation.
const (
	foreignKeyViolation = "23503"
	numericOverflow     = "22003"
)

// writeErr turns constraint failures caused by the written values into
// validation errors: a missing hotel_id target or a number too large for its
// column. Other errors are returned unchanged.
func writeErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case foreignKeyViolation:
		return fmt.Errorf("%w: hotel_id does not reference an existing hotel", domain.ErrValidation)
	case numericOverflow:
		return fmt.Errorf("%w: numeric value out of range", domain.ErrValidation)
	default:
		return err
	}
}
