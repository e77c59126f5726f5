package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"custody/internal/core/domain/model/audit"

	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records messages instead of writing to a broker.
type fakeWriter struct {
	msgs []skafka.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error { return nil }

func TestAuditPublisher_Publish(t *testing.T) {
	fw := &fakeWriter{}
	p := newAuditPublisherWithWriter(fw)

	record := audit.CourierHistoryRecord{
		CourierName: "courier",
		ItemIndices: []int{0, 2},
	}
	require.NoError(t, p.Publish(context.Background(), record))

	require.Len(t, fw.msgs, 1)
	assert.Equal(t, []byte(audit.KindCourierHistory), fw.msgs[0].Key)

	var decoded audit.CourierHistoryRecord
	require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &decoded))
	assert.Equal(t, record, decoded)
}

func TestAuditPublisher_PublishKeysByKind(t *testing.T) {
	fw := &fakeWriter{}
	p := newAuditPublisherWithWriter(fw)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, audit.ItemQueryRecord{Name: "bolt"}))
	require.NoError(t, p.Publish(ctx, audit.ShipmentQueryRecord{ShipmentID: 1}))

	require.Len(t, fw.msgs, 2)
	assert.Equal(t, []byte(audit.KindItemQuery), fw.msgs[0].Key)
	assert.Equal(t, []byte(audit.KindShipmentQuery), fw.msgs[1].Key)
}
