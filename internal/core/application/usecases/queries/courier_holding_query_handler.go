package queries

import (
	"context"

	"custody/internal/core/domain/model/audit"
	"custody/internal/core/ports"
)

// CourierHoldingQueryHandler projects one courier ledger entry. The ledger
// keeps only the most recent shipment per courier, so the returned indices
// reflect the courier's latest assignment.
type CourierHoldingQueryHandler struct {
	reader    ContractReader
	publisher ports.AuditPublisher
}

func NewCourierHoldingQueryHandler(reader ContractReader, publisher ports.AuditPublisher) CourierHoldingQueryHandler {
	return CourierHoldingQueryHandler{reader: reader, publisher: publisher}
}

// Handle produces the courier holding and emits a CourierHistory audit record.
func (h CourierHoldingQueryHandler) Handle(
	ctx context.Context,
	query CourierHoldingQuery,
) (CourierHoldingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierHoldingQueryResponse{}, err
	}

	aggregate, err := h.reader.Contract(ctx)
	if err != nil {
		return CourierHoldingQueryResponse{}, err
	}

	entry, err := aggregate.CourierEntry(query.Courier())
	if err != nil {
		return CourierHoldingQueryResponse{}, err
	}

	resp := CourierHoldingQueryResponse{
		CourierName: entry.Courier().Name(),
		ItemIndices: entry.ItemIndices(),
	}

	record := audit.CourierHistoryRecord{
		CourierName: resp.CourierName,
		ItemIndices: resp.ItemIndices,
	}
	if err := h.publisher.Publish(ctx, record); err != nil {
		return CourierHoldingQueryResponse{}, err
	}

	return resp, nil
}
