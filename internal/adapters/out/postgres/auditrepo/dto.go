// Package auditrepo persists audit records to PostgreSQL. Every served query
// snapshot lands here as an append-only row, keyed by a generated UUID and
// carrying the record payload as JSON.
package auditrepo

import (
	"encoding/json"
	"time"

	"custody/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// AuditRecordDTO represents the database structure for one audit record.
// The payload column stores the full record as JSON; the kind column is
// indexed so observers can filter by record type.
type AuditRecordDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind       string    `gorm:"type:varchar(64);index"`
	Payload    string    `gorm:"type:jsonb"`
	OccurredAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "audit_records".
func (AuditRecordDTO) TableName() string {
	return "audit_records"
}

// fromRecord converts an audit record to its database representation.
func fromRecord(record audit.Record, occurredAt time.Time) (AuditRecordDTO, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return AuditRecordDTO{}, err
	}

	return AuditRecordDTO{
		ID:         uuid.New(),
		Kind:       string(record.Kind()),
		Payload:    string(payload),
		OccurredAt: occurredAt,
	}, nil
}
