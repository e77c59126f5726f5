package commands

import (
	"context"
)

// SignContractCommandHandler handles the supplier countersignature.
type SignContractCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewSignContractCommandHandler creates a handler for the countersignature.
func NewSignContractCommandHandler(uowFactory ContractUoWFactory) SignContractCommandHandler {
	return SignContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command inside a transaction.
func (h *SignContractCommandHandler) Handle(ctx context.Context, cmd SignContractCommand) error {
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

	if err := aggregate.Sign(cmd.Caller()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
