// Package adapters provides the repository implementations for the sos feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"disaster_backend/internal/feature/sos/domain/entity"
	"disaster_backend/internal/feature/sos/usecase"
)

// sosGorm is the GORM implementation of the SOSRepository interface.
type sosGorm struct {
	db *gorm.DB
}

// Compile-time check that sosGorm implements usecase.SOSRepository.
var _ usecase.SOSRepository = (*sosGorm)(nil)

// NewSOSGorm creates a new sosGorm backed by the given gorm.DB connection.
func NewSOSGorm(db *gorm.DB) *sosGorm {
	return &sosGorm{db: db}
}

// Create persists the report inside a single transaction; on failure the
// transaction is rolled back and no partial write remains visible.
func (r *sosGorm) Create(ctx context.Context, msg *entity.SOSMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(msg).Error
	})
}
