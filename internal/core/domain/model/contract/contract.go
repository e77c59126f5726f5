// Package contract contains the Contract aggregate root: the custody
// lifecycle orchestrator owning the item arena, the shipment arena, the
// courier ledger, and the pending-delivery bookkeeping.
//
// All mutating operations are role-gated through a single AccessGuard check
// and validate every precondition before touching any state, so a rejected
// operation leaves the aggregate byte-for-byte unchanged.
package contract

import (
	"errors"
	"time"

	"custody/internal/core/domain/model/item"
	"custody/internal/core/domain/model/kernel"
	"custody/internal/core/domain/model/shipment"
	"custody/internal/pkg/errs"
)

// ErrContractIsNotConstructed is returned when a Contract instance was not
// created through the NewContract factory method.
var ErrContractIsNotConstructed = errors.New("Contract must be created via NewContract constructor")

// Contract is the aggregate root of the custody tracker.
//
// Contract follows these invariants:
//   - The phase only advances Prepare -> Created -> Signed
//   - Items live in a dense 0-based arena and are assigned to at most one
//     shipment, exactly once
//   - Shipments live in a dense 1-based arena; their transit state never
//     regresses
//   - pendingCount equals the number of item slots whose pending flag is
//     still set: incremented once per item added during Prepare, decremented
//     once per item when its courier's shipment is received
type Contract struct {
	owner    kernel.Identity
	supplier kernel.Identity
	phase    Phase

	// Acceptable planned-arrival bounds fixed at contract creation.
	minETA time.Time
	maxETA time.Time

	items     []*item.Item
	shipments []*shipment.Shipment
	ledger    courierLedger

	// pending marks item indices not yet confirmed delivered.
	pending      map[int]bool
	pendingCount int

	access kernel.AccessGuard

	isConstructed bool
}

// NewContract creates a Contract in Prepare phase for the given owner.
// The supplier is fixed later via Init.
func NewContract(owner kernel.Identity) (*Contract, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	return &Contract{
		owner:         owner,
		phase:         Prepare,
		ledger:        make(courierLedger),
		pending:       make(map[int]bool),
		access:        kernel.NewAccessGuard(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Contract was properly constructed through NewContract.
func (c *Contract) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContractIsNotConstructed
	}
	return nil
}

// Owner returns the contract owner's identity.
func (c *Contract) Owner() kernel.Identity {
	return c.owner
}

// Supplier returns the supplier identity; zero until Init.
func (c *Contract) Supplier() kernel.Identity {
	return c.supplier
}

// Phase returns the overall lifecycle phase.
func (c *Contract) Phase() Phase {
	return c.phase
}

// MinETA returns the lower acceptable planned-arrival bound; zero until Init.
func (c *Contract) MinETA() time.Time {
	return c.minETA
}

// MaxETA returns the upper acceptable planned-arrival bound; zero until Init.
func (c *Contract) MaxETA() time.Time {
	return c.maxETA
}

// PendingCount returns the number of item slots not yet confirmed delivered.
func (c *Contract) PendingCount() int {
	return c.pendingCount
}

// IsSatisfied reports whether every registered item has been delivered.
func (c *Contract) IsSatisfied() bool {
	return c.pendingCount == 0
}

// AddItem registers a new unassigned item and returns its 0-based index.
// Requires Prepare phase and the owner as caller. Each added item raises the
// pending count by one.
func (c *Contract) AddItem(
	caller kernel.Identity,
	name, description, unit string,
	volume, price kernel.Quantity,
) (int, error) {
	if err := c.access.Verify(caller, c.owner, "owner"); err != nil {
		return 0, err
	}
	if c.phase != Prepare {
		return 0, errs.NewInvalidPhaseError(c.phase.String(), Prepare.String())
	}

	it, err := item.NewItem(name, description, unit, volume, price)
	if err != nil {
		return 0, err
	}

	index := len(c.items)
	c.items = append(c.items, it)
	c.pending[index] = true
	c.pendingCount++

	return index, nil
}

// Init fixes the supplier identity and the acceptable ETA bounds and moves
// the contract from Prepare to Created. Requires the owner as caller.
func (c *Contract) Init(caller, supplier kernel.Identity, minETA, maxETA time.Time) error {
	if err := c.access.Verify(caller, c.owner, "owner"); err != nil {
		return err
	}
	if err := supplier.Validate(); err != nil {
		return err
	}

	newPhase, err := c.phase.Create()
	if err != nil {
		return err
	}

	c.supplier = supplier
	c.minETA = minETA
	c.maxETA = maxETA
	c.phase = newPhase
	return nil
}

// Sign lets the supplier countersign the contract, moving it from Created to
// Signed. Shipments may be created from then on.
func (c *Contract) Sign(caller kernel.Identity) error {
	newPhase, err := c.phase.Sign()
	if err != nil {
		return err
	}
	if err := c.access.Verify(caller, c.supplier, "supplier"); err != nil {
		return err
	}

	c.phase = newPhase
	return nil
}

// CreateShipment creates a shipment in Prepare transit state carrying the
// referenced items and returns its 1-based identifier. Requires the overall
// phase Signed and the supplier as caller. Every referenced item must exist
// and be unassigned; the courier's ledger entry is overwritten with the new
// item set.
func (c *Contract) CreateShipment(
	caller, courier kernel.Identity,
	currentLocation string,
	itemIndices []int,
	origin, destination string,
	etd, eta time.Time,
) (int, error) {
	if err := c.access.Verify(caller, c.supplier, "supplier"); err != nil {
		return 0, err
	}
	if c.phase != Signed {
		return 0, errs.NewInvalidPhaseError(c.phase.String(), Signed.String())
	}

	for _, index := range itemIndices {
		it, err := c.Item(index)
		if err != nil {
			return 0, err
		}
		if it.IsAssigned() {
			return 0, errs.NewItemAlreadyAssignedError(index, it.ShipmentRef())
		}
	}

	id := len(c.shipments) + 1
	s, err := shipment.NewShipment(id, courier, currentLocation, itemIndices, origin, destination, etd, eta)
	if err != nil {
		return 0, err
	}

	c.shipments = append(c.shipments, s)
	c.ledger.record(courier, itemIndices)

	for _, index := range itemIndices {
		// Cannot fail: every index was checked unassigned above.
		if err := c.items[index].AssignTo(index, id); err != nil {
			return 0, err
		}
	}

	return id, nil
}

// SignShipment lets the assigned courier accept a shipment.
func (c *Contract) SignShipment(caller kernel.Identity, shipmentID int) error {
	s, err := c.Shipment(shipmentID)
	if err != nil {
		return err
	}
	return s.Sign(caller)
}

// HandOverShipment records the physical hand-over of a signed shipment to
// its courier.
func (c *Contract) HandOverShipment(caller kernel.Identity, shipmentID int) error {
	s, err := c.Shipment(shipmentID)
	if err != nil {
		return err
	}
	return s.HandOver(caller)
}

// UpdateShipmentStatus applies a courier progress report to a shipment; see
// shipment.UpdateStatus for the code semantics.
func (c *Contract) UpdateShipmentStatus(
	caller kernel.Identity,
	shipmentID int,
	newLocation string,
	code int,
	at time.Time,
) error {
	s, err := c.Shipment(shipmentID)
	if err != nil {
		return err
	}
	return s.UpdateStatus(caller, newLocation, code, at)
}

// ReceiveShipment lets the owner confirm delivery of a shipment. The
// shipment becomes Delivered with its location snapped to the destination,
// and every item index currently recorded for the shipment's courier in the
// ledger settles: its pending flag is cleared and the pending count drops by
// one. Already-settled indices are skipped, so a ledger entry overwritten by
// a later shipment can never settle the same item slot twice.
func (c *Contract) ReceiveShipment(caller kernel.Identity, shipmentID int) error {
	if err := c.access.Verify(caller, c.owner, "owner"); err != nil {
		return err
	}

	s, err := c.Shipment(shipmentID)
	if err != nil {
		return err
	}

	if err := s.Deliver(); err != nil {
		return err
	}

	if entry, ok := c.ledger.entry(s.Courier().Credential()); ok {
		for _, index := range entry.ItemIndices() {
			if c.pending[index] {
				delete(c.pending, index)
				c.pendingCount--
			}
		}
	}

	return nil
}

// Item returns the item at the given 0-based index.
func (c *Contract) Item(index int) (*item.Item, error) {
	if index < 0 || index >= len(c.items) {
		return nil, errs.NewObjectNotFoundError("itemIndex", index)
	}
	return c.items[index], nil
}

// Shipment returns the shipment with the given 1-based identifier.
func (c *Contract) Shipment(id int) (*shipment.Shipment, error) {
	if id < 1 || id > len(c.shipments) {
		return nil, errs.NewObjectNotFoundError("shipmentId", id)
	}
	return c.shipments[id-1], nil
}

// CourierEntry returns the most recent ledger entry for a courier credential.
func (c *Contract) CourierEntry(courier kernel.Identity) (LedgerEntry, error) {
	entry, ok := c.ledger.entry(courier.Credential())
	if !ok {
		return LedgerEntry{}, errs.NewObjectNotFoundError("courier", courier.String())
	}
	return entry, nil
}

// ItemCount returns the number of registered items.
func (c *Contract) ItemCount() int {
	return len(c.items)
}

// ShipmentCount returns the number of created shipments.
func (c *Contract) ShipmentCount() int {
	return len(c.shipments)
}

// CourierCount returns the number of distinct couriers in the ledger.
func (c *Contract) CourierCount() int {
	return len(c.ledger)
}

// Clone returns a deep, independent copy of the aggregate. The store commits
// mutations by swapping in a mutated clone, so committed contracts are never
// written to in place.
func (c *Contract) Clone() *Contract {
	clone := *c

	clone.items = make([]*item.Item, len(c.items))
	for i, it := range c.items {
		clone.items[i] = it.Clone()
	}

	clone.shipments = make([]*shipment.Shipment, len(c.shipments))
	for i, s := range c.shipments {
		clone.shipments[i] = s.Clone()
	}

	clone.ledger = c.ledger.clone()

	clone.pending = make(map[int]bool, len(c.pending))
	for index, flag := range c.pending {
		clone.pending[index] = flag
	}

	return &clone
}
