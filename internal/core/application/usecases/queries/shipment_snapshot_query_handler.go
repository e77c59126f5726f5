package queries

import (
	"context"

	"custody/internal/core/domain/model/audit"
	"custody/internal/core/ports"
)

// ShipmentSnapshotQueryHandler projects one shipment into a flat snapshot
// with its planned and actual transit times and a human-readable state label.
type ShipmentSnapshotQueryHandler struct {
	reader    ContractReader
	publisher ports.AuditPublisher
}

func NewShipmentSnapshotQueryHandler(reader ContractReader, publisher ports.AuditPublisher) ShipmentSnapshotQueryHandler {
	return ShipmentSnapshotQueryHandler{reader: reader, publisher: publisher}
}

// Handle produces the shipment snapshot and emits a ShipmentQuery audit record.
func (h ShipmentSnapshotQueryHandler) Handle(
	ctx context.Context,
	query ShipmentSnapshotQuery,
) (ShipmentSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentSnapshotQueryResponse{}, err
	}

	aggregate, err := h.reader.Contract(ctx)
	if err != nil {
		return ShipmentSnapshotQueryResponse{}, err
	}

	s, err := aggregate.Shipment(query.ShipmentID())
	if err != nil {
		return ShipmentSnapshotQueryResponse{}, err
	}

	resp := ShipmentSnapshotQueryResponse{
		ShipmentID:      s.ID(),
		State:           s.Status().String(),
		Origin:          s.Origin(),
		Destination:     s.Destination(),
		CurrentLocation: s.CurrentLocation(),
		CourierName:     s.Courier().Name(),
		ETD:             s.ETD(),
		ETA:             s.ETA(),
		ATD:             s.ATD(),
		ATA:             s.ATA(),
	}

	record := audit.ShipmentQueryRecord{
		ShipmentID:      resp.ShipmentID,
		State:           resp.State,
		Origin:          resp.Origin,
		Destination:     resp.Destination,
		CurrentLocation: resp.CurrentLocation,
		CourierName:     resp.CourierName,
		ETD:             resp.ETD,
		ETA:             resp.ETA,
		ATD:             resp.ATD,
		ATA:             resp.ATA,
	}
	if err := h.publisher.Publish(ctx, record); err != nil {
		return ShipmentSnapshotQueryResponse{}, err
	}

	return resp, nil
}
