// Package commands contains the write operations of the custody tracker.
// Implements the Command pattern for state mutations in the CQRS split.
// All commands follow a consistent pattern: constructor validation, a unit
// of work as the atomic transaction boundary, and a single aggregate
// operation between Begin and Commit.
package commands

import (
	"context"

	"custody/internal/core/ports"
)

// Unit of Work interfaces give command handlers an atomic transaction
// boundary over the contract aggregate.
type (
	// TxManager handles the transaction lifecycle. A rejected operation is
	// rolled back entirely; no partial writes become visible.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ContractRepoFactory provides access to the contract repository within
	// a transaction.
	ContractRepoFactory interface {
		ContractRepository() ports.ContractRepository
	}

	// ContractUoW manages transactions over the contract aggregate.
	ContractUoW interface {
		TxManager
		ContractRepoFactory
	}

	// ContractUoWFactory creates new unit of work instances, one per
	// command execution.
	ContractUoWFactory interface {
		Create() ContractUoW
	}
)
