package domain

import (
	"errors"
	"time"
)

var (
	ErrMealNameRequired        = errors.New("meal option name is required")
	ErrMealCeremonyRequired    = errors.New("meal option ceremony is required")
	ErrSelectionGuestRequired  = errors.New("meal selection guest is required")
	ErrSelectionOptionRequired = errors.New("meal selection option is required")
)

// MealOption is a dish offered at a ceremony. Its event scope is inherited
// transitively through the ceremony.
type MealOption struct {
	ID          int64     `json:"id"`
	CeremonyID  int64     `json:"ceremony_id"`
	EventID     int64     `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Vegetarian  bool      `json:"vegetarian"`
	Vegan       bool      `json:"vegan"`
	GlutenFree  bool      `json:"gluten_free"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewMealOption builds a validated meal option under the given ceremony
func NewMealOption(ceremonyID, eventID int64, name string) (*MealOption, error) {
	if ceremonyID <= 0 || eventID <= 0 {
		return nil, ErrMealCeremonyRequired
	}
	if name == "" {
		return nil, ErrMealNameRequired
	}

	now := time.Now()
	return &MealOption{
		CeremonyID: ceremonyID,
		EventID:    eventID,
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// MealSelection records which dish a guest chose at a ceremony. Guest,
// ceremony, and option must all belong to the same event.
type MealSelection struct {
	ID           int64     `json:"id"`
	GuestID      int64     `json:"guest_id"`
	CeremonyID   int64     `json:"ceremony_id"`
	MealOptionID int64     `json:"meal_option_id"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
