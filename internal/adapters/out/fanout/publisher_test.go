package fanout_test

import (
	"context"
	"errors"
	"testing"

	"custody/internal/adapters/out/fanout"
	"custody/internal/core/domain/model/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSink struct {
	records []audit.Record
	err     error
}

func (s *stubSink) Publish(_ context.Context, record audit.Record) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, record)
	return nil
}

func TestPublisher_DeliversToAllSinks(t *testing.T) {
	first := &stubSink{}
	second := &stubSink{}
	p := fanout.NewPublisher(first, second)

	record := audit.ItemQueryRecord{Name: "bolt"}
	require.NoError(t, p.Publish(context.Background(), record))

	require.Len(t, first.records, 1)
	require.Len(t, second.records, 1)
}

func TestPublisher_ContinuesPastFailingSink(t *testing.T) {
	failing := &stubSink{err: errors.New("sink down")}
	healthy := &stubSink{}
	p := fanout.NewPublisher(failing, healthy)

	err := p.Publish(context.Background(), audit.CourierHistoryRecord{CourierName: "courier"})
	require.Error(t, err)
	assert.Len(t, healthy.records, 1)
}

func TestPublisher_NoSinks(t *testing.T) {
	p := fanout.NewPublisher()
	require.NoError(t, p.Publish(context.Background(), audit.ShipmentQueryRecord{ShipmentID: 1}))
}
