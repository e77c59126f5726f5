package auditrepo

import (
	"context"
	"time"

	"custody/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditRepository implements ports.AuditPublisher using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Publish appends one audit record.
func (r *GormAuditRepository) Publish(ctx context.Context, record audit.Record) error {
	dto, err := fromRecord(record, time.Now().UTC())
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}
