package services

import (
	"custody/internal/core/domain/model/contract"
	"custody/internal/core/domain/model/kernel"
	"custody/internal/core/domain/model/shipment"
)

// CustodyResolver is a domain service answering who currently manages an
// item that belongs to a shipment.
//
// Business rules:
//   - While the shipment is still with the supplier (Prepare or Signed),
//     the supplier manages the item
//   - Once the shipment is Delivered, the owner manages it
//   - In every state in between, the assigned courier does
type CustodyResolver struct{}

// NewCustodyResolver creates a CustodyResolver.
func NewCustodyResolver() CustodyResolver {
	return CustodyResolver{}
}

// Resolve returns the identity managing the given shipment's items.
func (CustodyResolver) Resolve(c *contract.Contract, s *shipment.Shipment) kernel.Identity {
	switch s.Status() {
	case shipment.Prepare, shipment.Signed:
		return c.Supplier()
	case shipment.Delivered:
		return c.Owner()
	default:
		return s.Courier()
	}
}
