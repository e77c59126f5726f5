package contract

import (
	"custody/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// LedgerEntry records the set of item indices most recently entrusted to a
// courier via shipment creation. A courier identity used in a second
// shipment overwrites its prior entry; the ledger keeps no history.
type LedgerEntry struct {
	courier     kernel.Identity
	itemIndices []int
}

// Courier returns the courier identity the entry belongs to.
func (e LedgerEntry) Courier() kernel.Identity {
	return e.courier
}

// ItemIndices returns a copy of the entrusted 0-based item indices.
func (e LedgerEntry) ItemIndices() []int {
	return append([]int(nil), e.itemIndices...)
}

// courierLedger maps courier credentials to their most recent entry.
type courierLedger map[uuid.UUID]LedgerEntry

// record stores the entry for a courier, replacing any prior one.
func (l courierLedger) record(courier kernel.Identity, itemIndices []int) {
	l[courier.Credential()] = LedgerEntry{
		courier:     courier,
		itemIndices: append([]int(nil), itemIndices...),
	}
}

// entry looks up the most recent entry for a courier credential.
func (l courierLedger) entry(credential uuid.UUID) (LedgerEntry, bool) {
	e, ok := l[credential]
	return e, ok
}

// clone returns an independent copy of the ledger.
func (l courierLedger) clone() courierLedger {
	out := make(courierLedger, len(l))
	for credential, e := range l {
		out[credential] = LedgerEntry{
			courier:     e.courier,
			itemIndices: append([]int(nil), e.itemIndices...),
		}
	}
	return out
}
