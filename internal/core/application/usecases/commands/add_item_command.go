package commands

import (
	"errors"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"
	"custody/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
)

// AddItemCommand represents the owner's request to register a new item
// while the contract is still in preparation.
//
// Example:
//
//	cmd, err := NewAddItemCommand(owner, "Widget", "boxed widgets", "pcs", 1, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid item data: %w", err)
//	}
//
//	handler := NewAddItemCommandHandler(uowFactory)
//	index, err := handler.Handle(ctx, cmd)
type AddItemCommand struct { //nolint:recvcheck //using for validation
	caller      kernel.Identity
	name        string
	description string
	unit        string
	volume      kernel.Quantity
	price       kernel.Quantity

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to register a new item. Volume and
// price must be non-negative; name and unit must not be empty.
func NewAddItemCommand(
	caller kernel.Identity,
	name, description, unit string,
	volume, price int,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setFields(name, description, unit),
		cmd.setVolume(volume),
		cmd.setPrice(price),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// Caller returns the identity attempting the operation.
func (c AddItemCommand) Caller() kernel.Identity {
	return c.caller
}

// Name returns the item name.
func (c AddItemCommand) Name() string {
	return c.name
}

// Description returns the item description; may be empty.
func (c AddItemCommand) Description() string {
	return c.description
}

// Unit returns the unit the volume is measured in.
func (c AddItemCommand) Unit() string {
	return c.unit
}

// Volume returns the item volume.
func (c AddItemCommand) Volume() kernel.Quantity {
	return c.volume
}

// Price returns the item price.
func (c AddItemCommand) Price() kernel.Quantity {
	return c.price
}

func (c *AddItemCommand) setCaller(caller kernel.Identity) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AddItemCommand) setFields(name, description, unit string) error {
	// The item entity re-checks these; validating here keeps malformed
	// requests out of the transaction entirely.
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}

	c.name = name
	c.description = description
	c.unit = unit
	return nil
}

func (c *AddItemCommand) setVolume(volume int) error {
	q, err := kernel.NewQuantity(volume)
	if err != nil {
		return err
	}
	c.volume = q
	return nil
}

func (c *AddItemCommand) setPrice(price int) error {
	q, err := kernel.NewQuantity(price)
	if err != nil {
		return err
	}
	c.price = q
	return nil
}
