package queries

import (
	"errors"
	"time"

	"custody/internal/pkg/errs"
	"custody/internal/pkg/guard"
)

var (
	ErrShipmentSnapshotQueryIsNotConstructed = errors.New(
		"ShipmentSnapshotQuery must be created via NewShipmentSnapshotQuery constructor",
	)
)

// ShipmentSnapshotQuery retrieves a single shipment by its 1-based identifier.
type ShipmentSnapshotQuery struct {
	shipmentID int

	guard guard.ConstructorGuard
}

// NewShipmentSnapshotQuery creates a query for the shipment with the given
// 1-based identifier.
func NewShipmentSnapshotQuery(shipmentID int) (ShipmentSnapshotQuery, error) {
	if shipmentID < 1 {
		return ShipmentSnapshotQuery{}, errs.NewValueIsInvalidError("shipmentID")
	}

	return ShipmentSnapshotQuery{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ShipmentSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrShipmentSnapshotQueryIsNotConstructed)
}

// ShipmentID returns the 1-based identifier of the requested shipment.
func (q ShipmentSnapshotQuery) ShipmentID() int {
	return q.shipmentID
}

// ShipmentSnapshotQueryResponse is the flat projection of one shipment. ATD
// and ATA stay zero until the courier reports departure and arrival.
type ShipmentSnapshotQueryResponse struct {
	ShipmentID      int
	State           string
	Origin          string
	Destination     string
	CurrentLocation string
	CourierName     string
	ETD             time.Time
	ETA             time.Time
	ATD             time.Time
	ATA             time.Time
}
