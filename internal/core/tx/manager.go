// Package tx provides transaction management abstractions.
// Domain services depend on this interface, not concrete implementations;
// the actual implementation lives in infrastructure/storage/postgres.
package tx

import (
	"context"
)

// Manager defines the contract for transaction management.
type Manager interface {
	// RunInTransaction executes fn within a database transaction.
	// If fn returns an error, the transaction is rolled back.
	// Nested calls reuse the existing transaction from context.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Run executes fn through m, or directly when m is nil.
// Services use this so they stay runnable against in-memory repositories.
func Run(ctx context.Context, m Manager, fn func(ctx context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.RunInTransaction(ctx, fn)
}
