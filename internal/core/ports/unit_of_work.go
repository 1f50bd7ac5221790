package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command invocation.
// This is what gives each request its isolation: no unit of work is ever
// shared between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code manages
// the transaction lifecycle explicitly: Begin, then Commit or Rollback.
//
// Note that this layer performs no locking or compare-and-swap on order
// status: two concurrent transactions touching the same order resolve to
// whatever the database decides. A customer cancellation racing an admin
// status update is possible and unresolved here.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin.
	OrderRepository() OrderRepository
}
