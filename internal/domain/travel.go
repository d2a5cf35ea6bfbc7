package domain

import "time"

// TravelMode is how the guest arrives
type TravelMode string

const (
	TravelAir   TravelMode = "air"
	TravelTrain TravelMode = "train"
	TravelRoad  TravelMode = "road"
)

// IsValid checks if the mode is one of the defined modes
func (m TravelMode) IsValid() bool {
	switch m {
	case TravelAir, TravelTrain, TravelRoad:
		return true
	default:
		return false
	}
}

// TravelInfo holds one guest's arrival and departure logistics. At most one
// record per guest; the event scope is inherited through the guest.
type TravelInfo struct {
	ID            int64      `json:"id"`
	GuestID       int64      `json:"guest_id"`
	Mode          TravelMode `json:"mode"`
	ArrivalDate   *time.Time `json:"arrival_date,omitempty"`
	ArrivalTime   string     `json:"arrival_time,omitempty"`
	DepartureDate *time.Time `json:"departure_date,omitempty"`
	DepartureTime string     `json:"departure_time,omitempty"`
	Origin        string     `json:"origin,omitempty"`
	FlightNumber  string     `json:"flight_number,omitempty"`
	NeedsPickup   bool       `json:"needs_pickup"`
	NeedsDrop     bool       `json:"needs_drop"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
