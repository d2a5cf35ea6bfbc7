package repository

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// GuestFilter narrows guest listings
type GuestFilter struct {
	RSVPStatus domain.RSVPStatus
	Side       domain.GuestSide
	Search     string
}

// GuestRepository defines the interface for guest data access
type GuestRepository interface {
	// Create creates a new guest and fills in its generated id
	Create(ctx context.Context, guest *domain.Guest) error
	// GetByID retrieves a guest by ID
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	// ListByEvent retrieves an event's guests, optionally filtered
	ListByEvent(ctx context.Context, eventID int64, filter GuestFilter) ([]*domain.Guest, error)
	// CountByEventAndStatus counts an event's guests per RSVP status
	CountByEventAndStatus(ctx context.Context, eventID int64) (map[domain.RSVPStatus]int, error)
	// Update updates a guest. The guest's event is never reassigned.
	Update(ctx context.Context, guest *domain.Guest) error
	// Delete deletes a guest
	Delete(ctx context.Context, id int64) error
}
