// Package audit defines the structured records the core writes to its audit
// sink. The core never depends on how records are stored or transmitted;
// adapters decide that.
package audit

import "time"

// Kind discriminates the defined record kinds.
type Kind string

const (
	// KindItemQuery is emitted when an item snapshot is produced.
	KindItemQuery Kind = "ItemQuery"

	// KindShipmentQuery is emitted when a shipment snapshot is produced.
	KindShipmentQuery Kind = "ShipmentQuery"

	// KindCourierHistory is emitted when a courier holding is produced.
	KindCourierHistory Kind = "CourierHistory"

	// KindContractStateUpdated is defined for observers but no operation
	// currently produces it.
	KindContractStateUpdated Kind = "ContractStateUpdated"
)

// Record is a structured audit record ready for a sink.
type Record interface {
	Kind() Kind
}

// ItemQueryRecord mirrors the fields of an item snapshot.
type ItemQueryRecord struct {
	ItemIndex       int    `json:"itemIndex"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Unit            string `json:"unit"`
	Volume          int    `json:"volume"`
	Price           int    `json:"price"`
	ShipmentID      int    `json:"shipmentId"`
	CurrentLocation string `json:"currentLocation,omitempty"`
	ManagedBy       string `json:"managedBy,omitempty"`
}

// Kind implements Record.
func (ItemQueryRecord) Kind() Kind { return KindItemQuery }

// ShipmentQueryRecord mirrors the fields of a shipment snapshot.
type ShipmentQueryRecord struct {
	ShipmentID      int       `json:"shipmentId"`
	State           string    `json:"state"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	CurrentLocation string    `json:"currentLocation"`
	CourierName     string    `json:"courierName"`
	ETD             time.Time `json:"etd"`
	ETA             time.Time `json:"eta"`
	ATD             time.Time `json:"atd"`
	ATA             time.Time `json:"ata"`
}

// Kind implements Record.
func (ShipmentQueryRecord) Kind() Kind { return KindShipmentQuery }

// CourierHistoryRecord mirrors the fields of a courier holding.
type CourierHistoryRecord struct {
	CourierName string `json:"courierName"`
	ItemIndices []int  `json:"itemIndices"`
}

// Kind implements Record.
func (CourierHistoryRecord) Kind() Kind { return KindCourierHistory }

// ContractStateUpdatedRecord is the declared-but-unemitted record kind; it is
// kept so observers can rely on the full set of kinds being defined.
type ContractStateUpdatedRecord struct {
	Phase        string `json:"phase"`
	PendingCount int    `json:"pendingCount"`
	Satisfied    bool   `json:"satisfied"`
}

// Kind implements Record.
func (ContractStateUpdatedRecord) Kind() Kind { return KindContractStateUpdated }
