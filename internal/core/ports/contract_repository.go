// Package ports defines the outbound contracts of the application core:
// aggregate persistence, transaction boundaries, and the audit sink.
package ports

import (
	"context"

	"custody/internal/core/domain/model/contract"
)

// ContractRepository defines the persistence contract for the single
// contract aggregate the system tracks.
type ContractRepository interface {
	// Get retrieves the contract aggregate. Within a unit of work the
	// returned aggregate is a private working copy; mutations become
	// visible only after Update and Commit.
	Get(ctx context.Context) (*contract.Contract, error)

	// Update stages the mutated aggregate for the surrounding unit of work.
	Update(ctx context.Context, aggregate *contract.Contract) error
}
