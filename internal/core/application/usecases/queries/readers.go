// Package queries contains the read side of the application layer. Handlers
// project the last committed contract snapshot into flat response structs and
// emit an audit record for every snapshot they serve. None of them require
// authorization or mutate state.
package queries

import (
	"context"

	"custody/internal/core/domain/model/contract"
)

type (
	// ContractReader yields the last committed contract snapshot. Reads may
	// run concurrently with each other; the returned aggregate must not be
	// mutated.
	ContractReader interface {
		Contract(ctx context.Context) (*contract.Contract, error)
	}
)
