package repository

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// MealRepository defines the interface for meal option and selection data access
type MealRepository interface {
	// CreateOption creates a new meal option and fills in its generated id
	CreateOption(ctx context.Context, option *domain.MealOption) error
	// GetOptionByID retrieves a meal option by ID
	GetOptionByID(ctx context.Context, id int64) (*domain.MealOption, error)
	// ListOptionsByCeremony retrieves a ceremony's meal options
	ListOptionsByCeremony(ctx context.Context, ceremonyID int64) ([]*domain.MealOption, error)
	// UpdateOption updates a meal option
	UpdateOption(ctx context.Context, option *domain.MealOption) error
	// DeleteOption deletes a meal option and its selections
	DeleteOption(ctx context.Context, id int64) error

	// UpsertSelection records or replaces a guest's meal choice for a ceremony
	UpsertSelection(ctx context.Context, selection *domain.MealSelection) error
	// GetSelectionByID retrieves a selection by ID
	GetSelectionByID(ctx context.Context, id int64) (*domain.MealSelection, error)
	// ListSelectionsByGuest retrieves a guest's meal selections
	ListSelectionsByGuest(ctx context.Context, guestID int64) ([]*domain.MealSelection, error)
	// ListSelectionsByCeremony retrieves a ceremony's meal selections
	ListSelectionsByCeremony(ctx context.Context, ceremonyID int64) ([]*domain.MealSelection, error)
	// DeleteSelection deletes a selection
	DeleteSelection(ctx context.Context, id int64) error
}
