package ports

import (
	"context"

	"custody/internal/core/domain/model/audit"
)

// AuditPublisher is the sink the core writes audit records to. The core
// neither stores nor transmits records itself; implementations decide
// whether a record ends up in a database, a message broker, or a log.
type AuditPublisher interface {
	Publish(ctx context.Context, record audit.Record) error
}
