package domain

import (
	"errors"
	"time"
)

var (
	ErrEventTitleRequired   = errors.New("event title is required")
	ErrEventCoupleRequired  = errors.New("event couple names are required")
	ErrEventDatesRequired   = errors.New("event start and end dates are required")
	ErrEventDatesOutOfOrder = errors.New("event end date precedes start date")
	ErrEventCreatorRequired = errors.New("event creator is required")
)

// Event is a wedding event, the isolation boundary for every scoped
// resource. Guests, ceremonies, accommodations, and messages all carry its
// id and must never be visible from another event's context.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	CoupleNames string    `json:"couple_names"`
	BrideName   string    `json:"bride_name"`
	GroomName   string    `json:"groom_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent builds a validated event owned by the given creator
func NewEvent(title, coupleNames string, startDate, endDate time.Time, location string, createdBy int64) (*Event, error) {
	if title == "" {
		return nil, ErrEventTitleRequired
	}
	if coupleNames == "" {
		return nil, ErrEventCoupleRequired
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, ErrEventDatesRequired
	}
	if endDate.Before(startDate) {
		return nil, ErrEventDatesOutOfOrder
	}
	if createdBy <= 0 {
		return nil, ErrEventCreatorRequired
	}

	now := time.Now()
	return &Event{
		Title:       title,
		CoupleNames: coupleNames,
		StartDate:   startDate,
		EndDate:     endDate,
		Location:    location,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
