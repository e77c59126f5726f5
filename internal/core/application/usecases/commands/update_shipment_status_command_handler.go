package commands

import (
	"context"
	"time"
)

// UpdateShipmentStatusCommandHandler applies a courier's progress report to
// the contract, stamping it with the current wall-clock time.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ContractUoWFactory
}

func NewUpdateShipmentStatusCommandHandler(uowFactory ContractUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{uowFactory: uowFactory}
}

func (h UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
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

	if err := aggregate.UpdateShipmentStatus(
		cmd.Caller(),
		cmd.ShipmentID(),
		cmd.NewLocation(),
		cmd.StatusCode(),
		time.Now().UTC(),
	); err != nil {
		return err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
