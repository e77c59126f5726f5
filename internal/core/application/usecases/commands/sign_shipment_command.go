package commands

import (
	"errors"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"
	"custody/internal/pkg/guard"
)

var (
	ErrSignShipmentCommandIsNotConstructed = errors.New(
		"SignShipmentCommand must be created via NewSignShipmentCommand constructor",
	)
)

// SignShipmentCommand represents the courier's acknowledgement of a shipment
// assigned to them.
type SignShipmentCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Identity
	shipmentID int

	guard guard.ConstructorGuard
}

func NewSignShipmentCommand(caller kernel.Identity, shipmentID int) (SignShipmentCommand, error) {
	cmd := SignShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return SignShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignShipmentCommand) Validate() error {
	return c.guard.Validate(ErrSignShipmentCommandIsNotConstructed)
}

// Caller returns the identity attempting the operation.
func (c SignShipmentCommand) Caller() kernel.Identity {
	return c.caller
}

// ShipmentID returns the 1-based shipment identifier.
func (c SignShipmentCommand) ShipmentID() int {
	return c.shipmentID
}

func (c *SignShipmentCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *SignShipmentCommand) setShipmentID(shipmentID int) error {
	if shipmentID < 1 {
		return errs.NewValueIsInvalidError("shipmentID")
	}
	c.shipmentID = shipmentID
	return nil
}
