package commands

import (
	"errors"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/guard"
)

var (
	ErrSignContractCommandIsNotConstructed = errors.New(
		"SignContractCommand must be created via NewSignContractCommand constructor",
	)
)

// SignContractCommand represents the supplier's countersignature on a
// created contract, moving it from Created to Signed.
type SignContractCommand struct { //nolint:recvcheck //using for validation
	caller kernel.Identity

	guard guard.ConstructorGuard
}

// NewSignContractCommand creates a command to countersign the contract.
func NewSignContractCommand(caller kernel.Identity) (SignContractCommand, error) {
	if err := caller.Validate(); err != nil {
		return SignContractCommand{}, err
	}

	return SignContractCommand{
		caller: caller,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SignContractCommand) Validate() error {
	return c.guard.Validate(ErrSignContractCommandIsNotConstructed)
}

// Caller returns the identity attempting the operation.
func (c SignContractCommand) Caller() kernel.Identity {
	return c.caller
}
