package queries

import (
	"errors"

	"custody/internal/pkg/guard"
)

var (
	ErrCountsQueryIsNotConstructed = errors.New(
		"CountsQuery must be created via NewCountsQuery constructor",
	)
)

// CountsQuery retrieves the contract-wide tallies: registered items, created
// shipments and distinct couriers. It emits no audit record.
type CountsQuery struct {
	guard guard.ConstructorGuard
}

// NewCountsQuery creates a parameterless counts query.
func NewCountsQuery() CountsQuery {
	return CountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountsQuery) Validate() error {
	return q.guard.Validate(ErrCountsQueryIsNotConstructed)
}

// CountsQueryResponse carries the contract-wide tallies.
type CountsQueryResponse struct {
	ItemCount     int
	ShipmentCount int
	CourierCount  int
}
