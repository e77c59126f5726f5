// Package fanout combines several audit publishers into one.
package fanout

import (
	"context"
	"errors"

	"custody/internal/core/domain/model/audit"
	"custody/internal/core/ports"
)

// Publisher delivers every record to all configured sinks. Each sink is
// attempted even when an earlier one fails; failures are joined.
type Publisher struct {
	sinks []ports.AuditPublisher
}

func NewPublisher(sinks ...ports.AuditPublisher) *Publisher {
	return &Publisher{sinks: sinks}
}

// Publish forwards the record to every sink.
func (p *Publisher) Publish(ctx context.Context, record audit.Record) error {
	var errList []error
	for _, sink := range p.sinks {
		if err := sink.Publish(ctx, record); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
