package commands

import (
	"context"
)

// HandOverShipmentCommandHandler records the physical hand-over of a signed
// shipment from the supplier to the courier.
type HandOverShipmentCommandHandler struct {
	uowFactory ContractUoWFactory
}

func NewHandOverShipmentCommandHandler(uowFactory ContractUoWFactory) HandOverShipmentCommandHandler {
	return HandOverShipmentCommandHandler{uowFactory: uowFactory}
}

func (h HandOverShipmentCommandHandler) Handle(ctx context.Context, cmd HandOverShipmentCommand) error {
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

	if err := aggregate.HandOverShipment(cmd.Caller(), cmd.ShipmentID()); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
