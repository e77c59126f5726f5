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
	ErrInitContractCommandIsNotConstructed = errors.New(
		"InitContractCommand must be created via NewInitContractCommand constructor",
	)
)

// InitContractCommand represents the owner's request to fix the supplier
// identity and the acceptable planned-arrival bounds, moving the contract
// from Prepare to Created.
type InitContractCommand struct { //nolint:recvcheck //using for validation
	caller   kernel.Identity
	supplier kernel.Identity
	minETA   time.Time
	maxETA   time.Time

	guard guard.ConstructorGuard
}

// NewInitContractCommand creates a command fixing the supplier and the ETA
// bounds. The upper bound must not precede the lower one.
func NewInitContractCommand(
	caller, supplier kernel.Identity,
	minETA, maxETA time.Time,
) (InitContractCommand, error) {
	cmd := InitContractCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setSupplier(supplier),
		cmd.setBounds(minETA, maxETA),
	); err != nil {
		return InitContractCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitContractCommand) Validate() error {
	return c.guard.Validate(ErrInitContractCommandIsNotConstructed)
}

// Caller returns the identity attempting the operation.
func (c InitContractCommand) Caller() kernel.Identity {
	return c.caller
}

// Supplier returns the supplier identity to fix.
func (c InitContractCommand) Supplier() kernel.Identity {
	return c.supplier
}

// MinETA returns the lower acceptable planned-arrival bound.
func (c InitContractCommand) MinETA() time.Time {
	return c.minETA
}

// MaxETA returns the upper acceptable planned-arrival bound.
func (c InitContractCommand) MaxETA() time.Time {
	return c.maxETA
}

func (c *InitContractCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *InitContractCommand) setSupplier(supplier kernel.Identity) error {
	if err := supplier.Validate(); err != nil {
		return err
	}
	c.supplier = supplier
	return nil
}

func (c *InitContractCommand) setBounds(minETA, maxETA time.Time) error {
	if maxETA.Before(minETA) {
		return errs.NewValueIsInvalidErrorWithCause("etaBounds",
			fmt.Errorf("max ETA %s precedes min ETA %s", maxETA, minETA))
	}
	c.minETA = minETA
	c.maxETA = maxETA
	return nil
}
