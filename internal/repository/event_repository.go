package repository

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event and fills in its generated id
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	// List retrieves all events ordered by start date
	List(ctx context.Context) ([]*domain.Event, error)
	// ListByCreator retrieves the events created by the given user
	ListByCreator(ctx context.Context, userID int64) ([]*domain.Event, error)
	// Update updates an event
	Update(ctx context.Context, event *domain.Event) error
	// Delete deletes an event
	Delete(ctx context.Context, id int64) error
}
