package commands

import (
	"errors"
	"fmt"
	"time"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"
	"custody/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents the supplier's request to entrust a set
// of registered items to a courier for transit.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(
//	    supplier, courier, "FAC", []int{0}, "FAC", "DC",
//	    time.Unix(10, 0), time.Unix(50, 0),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	shipmentID, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	caller          kernel.Identity
	courier         kernel.Identity
	currentLocation string
	itemIndices     []int
	origin          string
	destination     string
	etd             time.Time
	eta             time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to entrust items to a courier.
// Origin and destination are required; every item index must be 0-based
// non-negative. Whether the indices exist and are still unassigned is the
// aggregate's call.
func NewCreateShipmentCommand(
	caller, courier kernel.Identity,
	currentLocation string,
	itemIndices []int,
	origin, destination string,
	etd, eta time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setCourier(courier),
		cmd.setRoute(origin, destination),
		cmd.setItemIndices(itemIndices),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	cmd.currentLocation = currentLocation
	cmd.etd = etd
	cmd.eta = eta

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Caller returns the identity attempting the operation.
func (c CreateShipmentCommand) Caller() kernel.Identity {
	return c.caller
}

// Courier returns the courier to entrust the items to.
func (c CreateShipmentCommand) Courier() kernel.Identity {
	return c.courier
}

// CurrentLocation returns the shipment's starting location.
func (c CreateShipmentCommand) CurrentLocation() string {
	return c.currentLocation
}

// ItemIndices returns a copy of the referenced 0-based item indices.
func (c CreateShipmentCommand) ItemIndices() []int {
	return append([]int(nil), c.itemIndices...)
}

// Origin returns the declared origin.
func (c CreateShipmentCommand) Origin() string {
	return c.origin
}

// Destination returns the declared destination.
func (c CreateShipmentCommand) Destination() string {
	return c.destination
}

// ETD returns the planned departure time.
func (c CreateShipmentCommand) ETD() time.Time {
	return c.etd
}

// ETA returns the planned arrival time.
func (c CreateShipmentCommand) ETA() time.Time {
	return c.eta
}

func (c *CreateShipmentCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *CreateShipmentCommand) setCourier(courier kernel.Identity) error {
	if err := courier.Validate(); err != nil {
		return err
	}
	c.courier = courier
	return nil
}

func (c *CreateShipmentCommand) setRoute(origin, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.origin = origin
	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setItemIndices(itemIndices []int) error {
	for _, index := range itemIndices {
		if index < 0 {
			return errs.NewValueIsInvalidErrorWithCause("itemIndices",
				fmt.Errorf("%d is not a 0-based item index", index))
		}
	}
	c.itemIndices = append([]int(nil), itemIndices...)
	return nil
}
