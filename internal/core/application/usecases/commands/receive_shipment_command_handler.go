package commands

import (
	"context"
)

// ReceiveShipmentCommandHandler completes a shipment on behalf of the owner
// and settles the pending items the courier was responsible for.
type ReceiveShipmentCommandHandler struct {
	uowFactory ContractUoWFactory
}

func NewReceiveShipmentCommandHandler(uowFactory ContractUoWFactory) ReceiveShipmentCommandHandler {
	return ReceiveShipmentCommandHandler{uowFactory: uowFactory}
}

func (h ReceiveShipmentCommandHandler) Handle(ctx context.Context, cmd ReceiveShipmentCommand) error {
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

	if err := aggregate.ReceiveShipment(cmd.Caller(), cmd.ShipmentID()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
