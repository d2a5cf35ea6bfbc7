package repository

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// AccommodationRepository defines the interface for accommodation data access
type AccommodationRepository interface {
	// Create creates a new accommodation and fills in its generated id
	Create(ctx context.Context, accommodation *domain.Accommodation) error
	// GetByID retrieves an accommodation by ID
	GetByID(ctx context.Context, id int64) (*domain.Accommodation, error)
	// ListByEvent retrieves an event's accommodations
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.Accommodation, error)
	// Update updates an accommodation
	Update(ctx context.Context, accommodation *domain.Accommodation) error
	// Delete deletes an accommodation and its allocations
	Delete(ctx context.Context, id int64) error

	// CreateAllocation assigns a guest a room, incrementing the allocated
	// count atomically. Returns domain.ErrAllocationNoRoomsLeft when full.
	CreateAllocation(ctx context.Context, allocation *domain.RoomAllocation) error
	// GetAllocationByID retrieves an allocation by ID
	GetAllocationByID(ctx context.Context, id int64) (*domain.RoomAllocation, error)
	// ListAllocationsByAccommodation retrieves an accommodation's allocations
	ListAllocationsByAccommodation(ctx context.Context, accommodationID int64) ([]*domain.RoomAllocation, error)
	// GetAllocationByGuest retrieves a guest's allocation, if any
	GetAllocationByGuest(ctx context.Context, guestID int64) (*domain.RoomAllocation, error)
	// UpdateAllocation updates an allocation's stay details
	UpdateAllocation(ctx context.Context, allocation *domain.RoomAllocation) error
	// DeleteAllocation releases a room, decrementing the allocated count
	DeleteAllocation(ctx context.Context, id int64) error
}
