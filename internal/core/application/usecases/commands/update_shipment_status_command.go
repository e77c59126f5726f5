package commands

import (
	"errors"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/core/domain/model/shipment"
	"custody/internal/pkg/errs"
	"custody/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
)

// UpdateShipmentStatusCommand represents a courier's progress report for a
// shipment in their custody: where it is now and which milestone it reached.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	caller      kernel.Identity
	shipmentID  int
	newLocation string
	statusCode  int

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a progress report command. The
// status code must be one of the courier milestones: hand-over confirmed,
// departed or arrived.
func NewUpdateShipmentStatusCommand(
	caller kernel.Identity,
	shipmentID int,
	newLocation string,
	statusCode int,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setShipmentID(shipmentID),
		cmd.setNewLocation(newLocation),
		cmd.setStatusCode(statusCode),
	); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// Caller returns the identity attempting the operation.
func (c UpdateShipmentStatusCommand) Caller() kernel.Identity {
	return c.caller
}

// ShipmentID returns the 1-based shipment identifier.
func (c UpdateShipmentStatusCommand) ShipmentID() int {
	return c.shipmentID
}

// NewLocation returns the reported location.
func (c UpdateShipmentStatusCommand) NewLocation() string {
	return c.newLocation
}

// StatusCode returns the reported milestone code.
func (c UpdateShipmentStatusCommand) StatusCode() int {
	return c.statusCode
}

func (c *UpdateShipmentStatusCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID int) error {
	if shipmentID < 1 {
		return errs.NewValueIsInvalidError("shipmentID")
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentStatusCommand) setNewLocation(newLocation string) error {
	if newLocation == "" {
		return errs.NewValueIsRequiredError("newLocation")
	}
	c.newLocation = newLocation
	return nil
}

func (c *UpdateShipmentStatusCommand) setStatusCode(statusCode int) error {
	if statusCode < shipment.CodeHandedOver || statusCode > shipment.CodeArrived {
		return errs.NewValueIsOutOfRangeError("statusCode", statusCode,
			shipment.CodeHandedOver, shipment.CodeArrived)
	}
	c.statusCode = statusCode
	return nil
}
