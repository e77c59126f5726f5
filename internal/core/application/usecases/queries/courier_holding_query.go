package queries

import (
	"errors"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/guard"
)

var (
	ErrCourierHoldingQueryIsNotConstructed = errors.New(
		"CourierHoldingQuery must be created via NewCourierHoldingQuery constructor",
	)
)

// CourierHoldingQuery retrieves the ledger entry of one courier: the item
// indices from the most recent shipment entrusted to them.
type CourierHoldingQuery struct {
	courier kernel.Identity

	guard guard.ConstructorGuard
}

// NewCourierHoldingQuery creates a query for the given courier's ledger entry.
func NewCourierHoldingQuery(courier kernel.Identity) (CourierHoldingQuery, error) {
	if err := courier.Validate(); err != nil {
		return CourierHoldingQuery{}, err
	}

	return CourierHoldingQuery{
		courier: courier,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CourierHoldingQuery) Validate() error {
	return q.guard.Validate(ErrCourierHoldingQueryIsNotConstructed)
}

// Courier returns the courier identity the query refers to.
func (q CourierHoldingQuery) Courier() kernel.Identity {
	return q.courier
}

// CourierHoldingQueryResponse is the flat projection of one ledger entry.
type CourierHoldingQueryResponse struct {
	CourierName string
	ItemIndices []int
}
