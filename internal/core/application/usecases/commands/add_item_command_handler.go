package commands

import (
	"context"
)

// AddItemCommandHandler handles item registration. The aggregate enforces
// the Prepare phase and the owner role; each registered item raises the
// pending count by one.
type AddItemCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewAddItemCommandHandler creates a handler for item registration.
func NewAddItemCommandHandler(uowFactory ContractUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the new item's 0-based index.
// The transaction guarantees the item table and pending count change
// together or not at all.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ContractRepository()
	aggregate, err := repo.Get(ctx)
	if err != nil {
		return 0, err
	}

	index, err := aggregate.AddItem(
		cmd.Caller(),
		cmd.Name(), cmd.Description(), cmd.Unit(),
		cmd.Volume(), cmd.Price(),
	)
	if err != nil {
		return 0, err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return index, nil
}
