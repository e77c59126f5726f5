package commands

import (
	"errors"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"
	"custody/internal/pkg/guard"
)

var (
	ErrHandOverShipmentCommandIsNotConstructed = errors.New(
		"HandOverShipmentCommand must be created via NewHandOverShipmentCommand constructor",
	)
)

// HandOverShipmentCommand represents the supplier releasing a signed shipment
// into the courier's physical custody.
type HandOverShipmentCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.Identity
	shipmentID int

	guard guard.ConstructorGuard
}

func NewHandOverShipmentCommand(caller kernel.Identity, shipmentID int) (HandOverShipmentCommand, error) {
	cmd := HandOverShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
	); err != nil {
		return HandOverShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HandOverShipmentCommand) Validate() error {
	return c.guard.Validate(ErrHandOverShipmentCommandIsNotConstructed)
}

// Caller returns the identity attempting the operation.
func (c HandOverShipmentCommand) Caller() kernel.Identity {
	return c.caller
}

// ShipmentID returns the 1-based shipment identifier.
func (c HandOverShipmentCommand) ShipmentID() int {
	return c.shipmentID
}

func (c *HandOverShipmentCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *HandOverShipmentCommand) setShipmentID(shipmentID int) error {
	if shipmentID < 1 {
		return errs.NewValueIsInvalidError("shipmentID")
	}
	c.shipmentID = shipmentID
	return nil
}
