package commands

import (
	"context"
)

// SignShipmentCommandHandler lets the assigned courier acknowledge a freshly
// created shipment, moving it from preparation into the signed state.
type SignShipmentCommandHandler struct {
	uowFactory ContractUoWFactory
}

func NewSignShipmentCommandHandler(uowFactory ContractUoWFactory) SignShipmentCommandHandler {
	return SignShipmentCommandHandler{uowFactory: uowFactory}
}

func (h SignShipmentCommandHandler) Handle(ctx context.Context, cmd SignShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.ContractRepository()

	aggregate, err := repo.Get(ctx)
	if err != nil {
		return err
	}

	if err := aggregate.SignShipment(cmd.Caller(), cmd.ShipmentID()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
