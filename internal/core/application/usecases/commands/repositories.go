// Package commands contains the state-changing order use cases.
// Each operation is a guarded command struct plus a stateless handler that
// validates preconditions, runs the repository calls inside a unit of work,
// and commits. Handlers never catch repository errors; they propagate to the
// HTTP adapter untouched.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages a transaction over the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh OrderUoW per command invocation.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
