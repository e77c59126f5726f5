package commands_test

import (
	"testing"
	"time"

	"custody/internal/core/domain/model/contract"
	"custody/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

type contractFixture struct {
	owner    kernel.Identity
	supplier kernel.Identity
	courier  kernel.Identity
	contract *contract.Contract
}

func mustIdentity(t *testing.T, name string) kernel.Identity {
	t.Helper()
	id, err := kernel.NewIdentity(name)
	require.NoError(t, err)
	return id
}

func mustQuantity(t *testing.T, value int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return q
}

// newPreparedFixture returns a contract in the Prepare phase with no items.
func newPreparedFixture(t *testing.T) contractFixture {
	t.Helper()

	owner := mustIdentity(t, "owner")
	aggregate, err := contract.NewContract(owner)
	require.NoError(t, err)

	return contractFixture{
		owner:    owner,
		supplier: mustIdentity(t, "supplier"),
		courier:  mustIdentity(t, "courier"),
		contract: aggregate,
	}
}

// newSignedFixture returns a signed contract holding one registered item.
func newSignedFixture(t *testing.T) contractFixture {
	t.Helper()

	fx := newPreparedFixture(t)
	_, err := fx.contract.AddItem(fx.owner, "bolt", "steel bolt", "pcs",
		mustQuantity(t, 5), mustQuantity(t, 120))
	require.NoError(t, err)

	minETA := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	maxETA := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, fx.contract.Init(fx.owner, fx.supplier, minETA, maxETA))
	require.NoError(t, fx.contract.Sign(fx.supplier))

	return fx
}

// newArrivedFixture returns a signed contract whose single shipment has been
// driven to the Arrived state by the courier.
func newArrivedFixture(t *testing.T) contractFixture {
	t.Helper()

	fx := newSignedFixture(t)
	id, err := fx.contract.CreateShipment(fx.supplier, fx.courier, "FAC",
		[]int{0}, "FAC", "DC",
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, 1, id)

	require.NoError(t, fx.contract.SignShipment(fx.courier, id))
	require.NoError(t, fx.contract.HandOverShipment(fx.supplier, id))
	require.NoError(t, fx.contract.UpdateShipmentStatus(fx.courier, id, "DC", 4,
		time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)))

	return fx
}
