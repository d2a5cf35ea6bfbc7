package domain

import (
	"errors"
	"time"
)

var (
	ErrCeremonyNameRequired  = errors.New("ceremony name is required")
	ErrCeremonyEventRequired = errors.New("ceremony event is required")
	ErrCeremonyDateRequired  = errors.New("ceremony date is required")
)

// Ceremony is a single function within a wedding event (e.g. sangeet,
// reception), scoped to exactly one event.
type Ceremony struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"event_id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	Location    string    `json:"location,omitempty"`
	Attire      string    `json:"attire,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCeremony builds a validated ceremony under the given event
func NewCeremony(eventID int64, name string, date time.Time) (*Ceremony, error) {
	if eventID <= 0 {
		return nil, ErrCeremonyEventRequired
	}
	if name == "" {
		return nil, ErrCeremonyNameRequired
	}
	if date.IsZero() {
		return nil, ErrCeremonyDateRequired
	}

	now := time.Now()
	return &Ceremony{
		EventID:   eventID,
		Name:      name,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CeremonyAttendance links a guest to a ceremony. Both participants must
// belong to the same event; the scoping check enforces this before any write.
type CeremonyAttendance struct {
	ID         int64     `json:"id"`
	GuestID    int64     `json:"guest_id"`
	CeremonyID int64     `json:"ceremony_id"`
	Attending  bool      `json:"attending"`
	CreatedAt  time.Time `json:"created_at"`
}
