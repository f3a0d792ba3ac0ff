// Package postgres keeps each collection in its own table. Row order is kept
// in a position column so a load returns records in the order they were saved.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type rowScanner interface {
	Scan(dest ...any) error
}

type table[T any] struct {
	name    string
	columns []string
	values  func(T) []any
	scan    func(rowScanner) (T, error)
}

type store[T any] struct {
	db       *dbpg.DB
	strategy retry.Strategy
	table    table[T]
}

func newStore[T any](db *dbpg.DB, t table[T]) store[T] {
	return store[T]{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		table: t,
	}
}

func (s store[T]) LoadAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY position`,
		strings.Join(s.table.columns, ", "), s.table.name)

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.table.name, err)
	}
	defer rows.Close()

	res := make([]T, 0)
	for rows.Next() {
		v, err := s.table.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.table.name, err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}

// SaveAll replaces the table contents in one transaction.
func (s store[T]) SaveAll(ctx context.Context, items []T) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM `+s.table.name); err != nil {
		return fmt.Errorf("clear %s: %w", s.table.name, err)
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(s.table.name, append(s.table.columns, "position")...))
	if err != nil {
		return fmt.Errorf("prepare copy %s: %w", s.table.name, err)
	}

	for i, v := range items {
		args := append(s.table.values(v), i)
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			stmt.Close()
			return fmt.Errorf("copy %s row %d: %w", s.table.name, i, err)
		}
	}
	// Пустой Exec сбрасывает буфер COPY.
	if _, err = stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("flush copy %s: %w", s.table.name, err)
	}
	if err = stmt.Close(); err != nil {
		return fmt.Errorf("close copy %s: %w", s.table.name, err)
	}

	return tx.Commit()
}
