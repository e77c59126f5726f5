package queries_test

import (
	"context"
	"testing"
	"time"

	"custody/internal/core/application/usecases/queries"
	"custody/internal/core/domain/model/audit"
	"custody/internal/core/domain/model/contract"
	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReader struct {
	aggregate *contract.Contract
}

func (r stubReader) Contract(_ context.Context) (*contract.Contract, error) {
	return r.aggregate, nil
}

type captureAuditPublisher struct {
	records []audit.Record
}

func (p *captureAuditPublisher) Publish(_ context.Context, record audit.Record) error {
	p.records = append(p.records, record)
	return nil
}

type fixture struct {
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

// newFixture builds a signed contract with two items, the first of which is
// riding on a handed-over shipment.
func newFixture(t *testing.T) fixture {
	t.Helper()

	owner := mustIdentity(t, "owner")
	supplier := mustIdentity(t, "supplier")
	courier := mustIdentity(t, "courier")

	aggregate, err := contract.NewContract(owner)
	require.NoError(t, err)

	_, err = aggregate.AddItem(owner, "bolt", "steel bolt", "pcs",
		mustQuantity(t, 5), mustQuantity(t, 120))
	require.NoError(t, err)
	_, err = aggregate.AddItem(owner, "nut", "", "pcs",
		mustQuantity(t, 2), mustQuantity(t, 40))
	require.NoError(t, err)

	require.NoError(t, aggregate.Init(owner, supplier,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, aggregate.Sign(supplier))

	id, err := aggregate.CreateShipment(supplier, courier, "FAC",
		[]int{0}, "FAC", "DC",
		time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, aggregate.SignShipment(courier, id))
	require.NoError(t, aggregate.HandOverShipment(supplier, id))

	return fixture{owner: owner, supplier: supplier, courier: courier, contract: aggregate}
}

func TestItemSnapshotQueryHandler_AssignedItem(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t)
	publisher := &captureAuditPublisher{}
	h := queries.NewItemSnapshotQueryHandler(stubReader{fx.contract}, publisher)

	query, err := queries.NewItemSnapshotQuery(0)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "bolt", resp.Name)
	assert.Equal(t, "pcs", resp.Unit)
	assert.Equal(t, 5, resp.Volume)
	assert.Equal(t, 120, resp.Price)
	assert.Equal(t, 1, resp.ShipmentID)
	assert.Equal(t, "FAC", resp.CurrentLocation)
	assert.Equal(t, "courier", resp.ManagedBy)

	require.Len(t, publisher.records, 1)
	record, ok := publisher.records[0].(audit.ItemQueryRecord)
	require.True(t, ok)
	assert.Equal(t, audit.KindItemQuery, record.Kind())
	assert.Equal(t, "bolt", record.Name)
	assert.Equal(t, "courier", record.ManagedBy)
}

func TestItemSnapshotQueryHandler_UnassignedItem(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t)
	publisher := &captureAuditPublisher{}
	h := queries.NewItemSnapshotQueryHandler(stubReader{fx.contract}, publisher)

	query, err := queries.NewItemSnapshotQuery(1)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "nut", resp.Name)
	assert.Zero(t, resp.ShipmentID)
	assert.Empty(t, resp.CurrentLocation)
	assert.Empty(t, resp.ManagedBy)
	assert.Len(t, publisher.records, 1)
}

func TestItemSnapshotQueryHandler_UnknownIndex(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t)
	publisher := &captureAuditPublisher{}
	h := queries.NewItemSnapshotQueryHandler(stubReader{fx.contract}, publisher)

	query, err := queries.NewItemSnapshotQuery(7)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, publisher.records)
}

func TestNewItemSnapshotQuery_NegativeIndex(t *testing.T) {
	_, err := queries.NewItemSnapshotQuery(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestShipmentSnapshotQueryHandler_Success(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t)
	publisher := &captureAuditPublisher{}
	h := queries.NewShipmentSnapshotQueryHandler(stubReader{fx.contract}, publisher)

	query, err := queries.NewShipmentSnapshotQuery(1)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.ShipmentID)
	assert.Equal(t, "HandedOver", resp.State)
	assert.Equal(t, "FAC", resp.Origin)
	assert.Equal(t, "DC", resp.Destination)
	assert.Equal(t, "FAC", resp.CurrentLocation)
	assert.Equal(t, "courier", resp.CourierName)
	assert.True(t, resp.ATD.IsZero())
	assert.True(t, resp.ATA.IsZero())

	require.Len(t, publisher.records, 1)
	record, ok := publisher.records[0].(audit.ShipmentQueryRecord)
	require.True(t, ok)
	assert.Equal(t, audit.KindShipmentQuery, record.Kind())
	assert.Equal(t, "HandedOver", record.State)
}

func TestShipmentSnapshotQueryHandler_UnknownShipment(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t)
	publisher := &captureAuditPublisher{}
	h := queries.NewShipmentSnapshotQueryHandler(stubReader{fx.contract}, publisher)

	query, err := queries.NewShipmentSnapshotQuery(9)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, publisher.records)
}

func TestCourierHoldingQueryHandler_Success(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t)
	publisher := &captureAuditPublisher{}
	h := queries.NewCourierHoldingQueryHandler(stubReader{fx.contract}, publisher)

	query, err := queries.NewCourierHoldingQuery(fx.courier)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "courier", resp.CourierName)
	assert.Equal(t, []int{0}, resp.ItemIndices)

	require.Len(t, publisher.records, 1)
	record, ok := publisher.records[0].(audit.CourierHistoryRecord)
	require.True(t, ok)
	assert.Equal(t, audit.KindCourierHistory, record.Kind())
	assert.Equal(t, []int{0}, record.ItemIndices)
}

func TestCourierHoldingQueryHandler_UnknownCourier(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t)
	publisher := &captureAuditPublisher{}
	h := queries.NewCourierHoldingQueryHandler(stubReader{fx.contract}, publisher)

	stranger := mustIdentity(t, "stranger")
	query, err := queries.NewCourierHoldingQuery(stranger)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, publisher.records)
}

func TestCountsQueryHandler_Success(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t)
	h := queries.NewCountsQueryHandler(stubReader{fx.contract})

	resp, err := h.Handle(ctx, queries.NewCountsQuery())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ItemCount)
	assert.Equal(t, 1, resp.ShipmentCount)
	assert.Equal(t, 1, resp.CourierCount)
}

func TestQueries_Validate_NotConstructed(t *testing.T) {
	ctx := t.Context()
	fx := newFixture(t)
	publisher := &captureAuditPublisher{}

	_, err := queries.NewItemSnapshotQueryHandler(stubReader{fx.contract}, publisher).
		Handle(ctx, queries.ItemSnapshotQuery{})
	assert.ErrorIs(t, err, queries.ErrItemSnapshotQueryIsNotConstructed)

	_, err = queries.NewShipmentSnapshotQueryHandler(stubReader{fx.contract}, publisher).
		Handle(ctx, queries.ShipmentSnapshotQuery{})
	assert.ErrorIs(t, err, queries.ErrShipmentSnapshotQueryIsNotConstructed)

	_, err = queries.NewCourierHoldingQueryHandler(stubReader{fx.contract}, publisher).
		Handle(ctx, queries.CourierHoldingQuery{})
	assert.ErrorIs(t, err, queries.ErrCourierHoldingQueryIsNotConstructed)

	_, err = queries.NewCountsQueryHandler(stubReader{fx.contract}).
		Handle(ctx, queries.CountsQuery{})
	assert.ErrorIs(t, err, queries.ErrCountsQueryIsNotConstructed)
}
