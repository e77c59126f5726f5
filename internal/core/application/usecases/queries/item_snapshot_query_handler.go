package queries

import (
	"context"

	"custody/internal/core/domain/model/audit"
	"custody/internal/core/domain/services"
	"custody/internal/core/ports"
)

// ItemSnapshotQueryHandler projects one item into a flat snapshot. When the
// item rides on a shipment the snapshot carries the shipment's current
// location and the party currently managing the item, resolved from the
// shipment's custody state.
type ItemSnapshotQueryHandler struct {
	reader    ContractReader
	publisher ports.AuditPublisher
	resolver  services.CustodyResolver
}

func NewItemSnapshotQueryHandler(reader ContractReader, publisher ports.AuditPublisher) ItemSnapshotQueryHandler {
	return ItemSnapshotQueryHandler{
		reader:    reader,
		publisher: publisher,
		resolver:  services.NewCustodyResolver(),
	}
}

// Handle produces the item snapshot and emits an ItemQuery audit record.
func (h ItemSnapshotQueryHandler) Handle(
	ctx context.Context,
	query ItemSnapshotQuery,
) (ItemSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ItemSnapshotQueryResponse{}, err
	}

	aggregate, err := h.reader.Contract(ctx)
	if err != nil {
		return ItemSnapshotQueryResponse{}, err
	}

	it, err := aggregate.Item(query.ItemIndex())
	if err != nil {
		return ItemSnapshotQueryResponse{}, err
	}

	resp := ItemSnapshotQueryResponse{
		ItemIndex:   query.ItemIndex(),
		Name:        it.Name(),
		Description: it.Description(),
		Unit:        it.Unit(),
		Volume:      it.Volume().Value(),
		Price:       it.Price().Value(),
	}

	if it.IsAssigned() {
		s, shipErr := aggregate.Shipment(it.ShipmentRef())
		if shipErr != nil {
			return ItemSnapshotQueryResponse{}, shipErr
		}
		resp.ShipmentID = s.ID()
		resp.CurrentLocation = s.CurrentLocation()
		resp.ManagedBy = h.resolver.Resolve(aggregate, s).Name()
	}

	record := audit.ItemQueryRecord{
		ItemIndex:       resp.ItemIndex,
		Name:            resp.Name,
		Description:     resp.Description,
		Unit:            resp.Unit,
		Volume:          resp.Volume,
		Price:           resp.Price,
		ShipmentID:      resp.ShipmentID,
		CurrentLocation: resp.CurrentLocation,
		ManagedBy:       resp.ManagedBy,
	}
	if err := h.publisher.Publish(ctx, record); err != nil {
		return ItemSnapshotQueryResponse{}, err
	}

	return resp, nil
}
