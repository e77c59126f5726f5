package queries

import (
	"context"
)

// CountsQueryHandler reports the contract-wide tallies.
type CountsQueryHandler struct {
	reader ContractReader
}

func NewCountsQueryHandler(reader ContractReader) CountsQueryHandler {
	return CountsQueryHandler{reader: reader}
}

func (h CountsQueryHandler) Handle(ctx context.Context, query CountsQuery) (CountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountsQueryResponse{}, err
	}

	aggregate, err := h.reader.Contract(ctx)
	if err != nil {
		return CountsQueryResponse{}, err
	}

	return CountsQueryResponse{
		ItemCount:     aggregate.ItemCount(),
		ShipmentCount: aggregate.ShipmentCount(),
		CourierCount:  aggregate.CourierCount(),
	}, nil
}
