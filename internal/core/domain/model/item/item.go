// Package item contains the Item entity: a tracked physical good registered
// during contract preparation and later referenced by at most one shipment.
package item

import (
	"errors"
	"fmt"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// unassigned is the shipment reference of an item that no shipment has
// claimed yet. Shipment identifiers are 1-based, so 0 is never a real one.
const unassigned = 0

// Item is a tracked physical good.
//
// Item follows these invariants:
//   - Name and unit are never empty
//   - Volume and price are non-negative quantities
//   - The shipment reference starts unassigned and changes exactly once,
//     to the 1-based identifier of the claiming shipment; it is never
//     reassigned or cleared afterwards
type Item struct {
	name        string
	description string
	unit        string
	volume      kernel.Quantity
	price       kernel.Quantity

	// shipmentRef is 0 while unassigned, otherwise the 1-based shipment id.
	shipmentRef int

	isConstructed bool
}

// NewItem creates an unassigned Item with validated fields.
// The description may be empty; name and unit may not.
func NewItem(name, description, unit string, volume, price kernel.Quantity) (*Item, error) {
	it := &Item{
		shipmentRef:   unassigned,
		isConstructed: true,
	}

	if err := errors.Join(
		it.setName(name),
		it.setUnit(unit),
	); err != nil {
		return nil, err
	}

	it.description = description
	it.volume = volume
	it.price = price

	return it, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Name returns the item's name.
func (i *Item) Name() string {
	return i.name
}

// Description returns the item's free-form description.
func (i *Item) Description() string {
	return i.description
}

// Unit returns the unit the volume is measured in.
func (i *Item) Unit() string {
	return i.unit
}

// Volume returns the item's volume.
func (i *Item) Volume() kernel.Quantity {
	return i.volume
}

// Price returns the item's price.
func (i *Item) Price() kernel.Quantity {
	return i.price
}

// ShipmentRef returns the 1-based identifier of the shipment the item belongs
// to, or 0 while the item is unassigned.
func (i *Item) ShipmentRef() int {
	return i.shipmentRef
}

// IsAssigned reports whether a shipment has claimed the item.
func (i *Item) IsAssigned() bool {
	return i.shipmentRef != unassigned
}

// AssignTo records the claiming shipment. Assignment happens exactly once:
// a second call fails with ItemAlreadyAssigned regardless of the identifier.
// The item index is the caller's 0-based arena position, used only for error
// reporting; items do not know their own index.
func (i *Item) AssignTo(itemIndex, shipmentID int) error {
	if shipmentID < 1 {
		return errs.NewValueIsInvalidErrorWithCause("shipmentID",
			fmt.Errorf("%d is not a 1-based shipment identifier", shipmentID))
	}

	if i.IsAssigned() {
		return errs.NewItemAlreadyAssignedError(itemIndex, i.shipmentRef)
	}

	i.shipmentRef = shipmentID
	return nil
}

// Clone returns an independent copy of the item.
func (i *Item) Clone() *Item {
	clone := *i
	return &clone
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	i.unit = unit
	return nil
}
