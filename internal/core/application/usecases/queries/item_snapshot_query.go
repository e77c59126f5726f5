package queries

import (
	"errors"

	"custody/internal/pkg/errs"
	"custody/internal/pkg/guard"
)

var (
	ErrItemSnapshotQueryIsNotConstructed = errors.New(
		"ItemSnapshotQuery must be created via NewItemSnapshotQuery constructor",
	)
)

// ItemSnapshotQuery retrieves a single registered item by its 0-based index.
//
// Example:
//
//	query, err := NewItemSnapshotQuery(0)
//	if err != nil {
//	    return fmt.Errorf("invalid item index: %w", err)
//	}
//
//	snapshot, err := handler.Handle(ctx, query)
type ItemSnapshotQuery struct {
	itemIndex int

	guard guard.ConstructorGuard
}

// NewItemSnapshotQuery creates a query for the item at the given 0-based index.
func NewItemSnapshotQuery(itemIndex int) (ItemSnapshotQuery, error) {
	if itemIndex < 0 {
		return ItemSnapshotQuery{}, errs.NewValueIsInvalidError("itemIndex")
	}

	return ItemSnapshotQuery{
		itemIndex: itemIndex,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ItemSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrItemSnapshotQueryIsNotConstructed)
}

// ItemIndex returns the 0-based index of the requested item.
func (q ItemSnapshotQuery) ItemIndex() int {
	return q.itemIndex
}

// ItemSnapshotQueryResponse is the flat projection of one item. Location and
// ManagedBy are empty while the item is not assigned to a shipment.
type ItemSnapshotQueryResponse struct {
	ItemIndex       int
	Name            string
	Description     string
	Unit            string
	Volume          int
	Price           int
	ShipmentID      int
	CurrentLocation string
	ManagedBy       string
}
