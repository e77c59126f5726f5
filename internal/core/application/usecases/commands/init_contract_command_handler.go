package commands

import (
	"context"
)

// InitContractCommandHandler handles contract creation: the supplier
// identity and ETA bounds become fixed and the phase advances to Created.
type InitContractCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewInitContractCommandHandler creates a handler for contract creation.
func NewInitContractCommandHandler(uowFactory ContractUoWFactory) InitContractCommandHandler {
	return InitContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command inside a transaction.
func (h *InitContractCommandHandler) Handle(ctx context.Context, cmd InitContractCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ContractRepository()
	aggregate, err := repo.Get(ctx)
	if err != nil {
		return err
	}

	if err := aggregate.Init(cmd.Caller(), cmd.Supplier(), cmd.MinETA(), cmd.MaxETA()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
