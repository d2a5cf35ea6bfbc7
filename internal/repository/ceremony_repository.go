package repository

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// CeremonyRepository defines the interface for ceremony data access
type CeremonyRepository interface {
	// Create creates a new ceremony and fills in its generated id
	Create(ctx context.Context, ceremony *domain.Ceremony) error
	// GetByID retrieves a ceremony by ID
	GetByID(ctx context.Context, id int64) (*domain.Ceremony, error)
	// ListByEvent retrieves an event's ceremonies ordered by date
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Ceremony, error)
	// Update updates a ceremony
	Update(ctx context.Context, ceremony *domain.Ceremony) error
	// Delete deletes a ceremony
	Delete(ctx context.Context, id int64) error

	// UpsertAttendance records or updates a guest's attendance at a ceremony
	UpsertAttendance(ctx context.Context, attendance *domain.CeremonyAttendance) error
	// ListAttendanceByCeremony retrieves all attendance records for a ceremony
	ListAttendanceByCeremony(ctx context.Context, ceremonyID int64) ([]*domain.CeremonyAttendance, error)
	// ListAttendanceByGuest retrieves a guest's attendance records
	ListAttendanceByGuest(ctx context.Context, guestID int64) ([]*domain.CeremonyAttendance, error)
}
