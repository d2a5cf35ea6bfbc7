package domain

import (
	"errors"
	"time"
)

var (
	ErrAccommodationNameRequired  = errors.New("accommodation hotel name is required")
	ErrAccommodationEventRequired = errors.New("accommodation event is required")
	ErrAccommodationNoCapacity    = errors.New("accommodation total rooms must be positive")
	ErrAllocationNoRoomsLeft      = errors.New("no rooms left to allocate")
)

// Accommodation is a block of rooms reserved at a hotel for an event's guests
type Accommodation struct {
	ID              int64     `json:"id"`
	EventID         int64     `json:"event_id"`
	HotelName       string    `json:"hotel_name"`
	RoomType        string    `json:"room_type,omitempty"`
	Capacity        int       `json:"capacity"`
	TotalRooms      int       `json:"total_rooms"`
	AllocatedRooms  int       `json:"allocated_rooms"`
	PricePerNight   string    `json:"price_per_night,omitempty"`
	SpecialFeatures string    `json:"special_features,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewAccommodation builds a validated room block under the given event
func NewAccommodation(eventID int64, hotelName string, totalRooms int) (*Accommodation, error) {
	if eventID <= 0 {
		return nil, ErrAccommodationEventRequired
	}
	if hotelName == "" {
		return nil, ErrAccommodationNameRequired
	}
	if totalRooms <= 0 {
		return nil, ErrAccommodationNoCapacity
	}

	now := time.Now()
	return &Accommodation{
		EventID:    eventID,
		HotelName:  hotelName,
		TotalRooms: totalRooms,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// HasVacancy reports whether another room can be allocated
func (a *Accommodation) HasVacancy() bool {
	return a.AllocatedRooms < a.TotalRooms
}

// RoomAllocation assigns a guest to an accommodation. The guest and the
// accommodation must belong to the same event.
type RoomAllocation struct {
	ID              int64      `json:"id"`
	AccommodationID int64      `json:"accommodation_id"`
	GuestID         int64      `json:"guest_id"`
	CheckIn         *time.Time `json:"check_in,omitempty"`
	CheckOut        *time.Time `json:"check_out,omitempty"`
	SpecialRequests string     `json:"special_requests,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
