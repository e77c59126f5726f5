package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, keeping
// concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for mutating operations. Every
// accepted operation is applied atomically against the shared state or
// rolled back entirely; callers never observe a mid-mutation snapshot.
// Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin starts the transaction and takes the write side of the store.
	Begin(ctx context.Context) error

	// Commit publishes the staged aggregate and releases the write side.
	Commit(ctx context.Context) error

	// Rollback discards staged changes and releases the write side.
	// Calling Rollback after Commit is a no-op, so handlers can defer it.
	Rollback(ctx context.Context) error

	// ContractRepository returns a repository bound to this transaction.
	ContractRepository() ContractRepository
}
