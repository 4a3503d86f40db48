// Package usecase implements the business logic for the sos feature.
package usecase

import (
	"context"

	"disaster_backend/internal/feature/sos/domain/entity"
)

// SOSRepository abstracts the persistence layer for emergency reports.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SOSRepository interface {
	// Create persists a new report and assigns its identifier.
	Create(ctx context.Context, msg *entity.SOSMessage) error
}

// SOSUsecase records inbound emergency signals.
type SOSUsecase struct {
	reports SOSRepository
}

// NewSOSUsecase creates a new SOSUsecase with the given repository.
func NewSOSUsecase(reports SOSRepository) *SOSUsecase {
	return &SOSUsecase{reports: reports}
}

// Submit persists an emergency location report and returns the stored record.
// userID is optional and deliberately not checked against the user store:
// anonymous and stale references are accepted.
func (u *SOSUsecase) Submit(ctx context.Context, lat, lon float64, userID *uint) (*entity.SOSMessage, error) {
	msg := &entity.SOSMessage{Latitude: lat, Longitude: lon, UserID: userID}
	if err := u.reports.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
