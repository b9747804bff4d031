package db

import "context"

// Transactor allows you to run queries from repositories within a transaction
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	// WithinLockedTransaction additionally takes a session advisory lock keyed
	// by lockKey before running fn, so runs holding the same key serialize.
	WithinLockedTransaction(ctx context.Context, lockKey int64, fn func(ctx context.Context) error) error
}
