package repository

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// TravelRepository defines the interface for travel info data access
type TravelRepository interface {
	// Upsert records or replaces a guest's travel info, one record per guest
	Upsert(ctx context.Context, info *domain.TravelInfo) error
	// GetByGuest retrieves a guest's travel info, if any
	GetByGuest(ctx context.Context, guestID int64) (*domain.TravelInfo, error)
	// ListByEvent retrieves travel info for all of an event's guests
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.TravelInfo, error)
	// DeleteByGuest removes a guest's travel info
	DeleteByGuest(ctx context.Context, guestID int64) error
}
