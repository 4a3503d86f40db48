// Package entity defines the domain entities for the sos feature.
package entity

import "time"

// SOSMessage represents a single emergency location report.
// Records are created once and never mutated or deleted.
type SOSMessage struct {
	// ID is the unique identifier for the report, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Latitude and Longitude are the reported location.
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`

	// UserID is a weak reference to the reporting user. It is nil for anonymous
	// signals and is stored as given without existence verification, so it may
	// point at a user that no longer (or never) existed.
	UserID *uint

	// CreatedAt is the timestamp when the report was received.
	CreatedAt time.Time
}
