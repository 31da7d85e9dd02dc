package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations
type UnitOfWork interface {
	// Do executes the given function within a transaction scope. The
	// transaction commits when fn returns nil and rolls back otherwise.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	// WithLock marks ctx so that reads issued through it take row locks
	// (SELECT ... FOR UPDATE) inside the current transaction.
	WithLock(ctx context.Context) context.Context
}
