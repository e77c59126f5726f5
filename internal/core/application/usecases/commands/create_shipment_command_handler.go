package commands

import (
	"context"
)

// CreateShipmentCommandHandler entrusts registered items to a courier by
// adding a new shipment to the contract. Only the supplier may do this, and
// only while the contract is signed.
type CreateShipmentCommandHandler struct {
	uowFactory ContractUoWFactory
}

func NewCreateShipmentCommandHandler(uowFactory ContractUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{uowFactory: uowFactory}
}

// Handle creates the shipment and returns its 1-based identifier.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.ContractRepository()

	aggregate, err := repo.Get(ctx)
	if err != nil {
		return 0, err
	}

	shipmentID, err := aggregate.CreateShipment(
		cmd.Caller(),
		cmd.Courier(),
		cmd.CurrentLocation(),
		cmd.ItemIndices(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.ETD(),
		cmd.ETA(),
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

	return shipmentID, nil
}
