package commands

import (
	"errors"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"
	"custody/internal/pkg/guard"
)

var (
	ErrReceiveShipmentCommandIsNotConstructed = errors.New(
		"ReceiveShipmentCommand must be created via NewReceiveShipmentCommand constructor",
	)
)

// ReceiveShipmentCommand represents the owner accepting a shipment at its
// destination, settling the items it carried.
type ReceiveShipmentCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Identity
	shipmentID int

	guard guard.ConstructorGuard
}

func NewReceiveShipmentCommand(caller kernel.Identity, shipmentID int) (ReceiveShipmentCommand, error) {
	cmd := ReceiveShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return ReceiveShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReceiveShipmentCommandIsNotConstructed)
}

// Caller returns the identity attempting the operation.
func (c ReceiveShipmentCommand) Caller() kernel.Identity {
	return c.caller
}

// ShipmentID returns the 1-based shipment identifier.
func (c ReceiveShipmentCommand) ShipmentID() int {
	return c.shipmentID
}

func (c *ReceiveShipmentCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *ReceiveShipmentCommand) setShipmentID(shipmentID int) error {
	if shipmentID < 1 {
		return errs.NewValueIsInvalidError("shipmentID")
	}
	c.shipmentID = shipmentID
	return nil
}
