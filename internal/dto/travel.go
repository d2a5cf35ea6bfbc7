package dto

import "time"

// UpsertTravelRequest records or replaces a guest's travel logistics
type UpsertTravelRequest struct {
	Mode          string     `json:"mode" binding:"required,oneof=air train road"`
	ArrivalDate   *time.Time `json:"arrival_date" binding:"omitempty"`
	ArrivalTime   string     `json:"arrival_time" binding:"omitempty,max=20"`
	DepartureDate *time.Time `json:"departure_date" binding:"omitempty"`
	DepartureTime string     `json:"departure_time" binding:"omitempty,max=20"`
	Origin        string     `json:"origin" binding:"omitempty,max=255"`
	FlightNumber  string     `json:"flight_number" binding:"omitempty,max=20"`
	NeedsPickup   bool       `json:"needs_pickup"`
	NeedsDrop     bool       `json:"needs_drop"`
}

// Validate checks cross-field constraints gin bindings cannot express
func (r *UpsertTravelRequest) Validate() (bool, string) {
	if r.ArrivalDate != nil && r.DepartureDate != nil && r.DepartureDate.Before(*r.ArrivalDate) {
		return false, "Departure must not precede arrival"
	}
	return true, ""
}
