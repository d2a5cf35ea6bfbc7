package dto

import "time"

// CreateAccommodationRequest represents request to add a room block
type CreateAccommodationRequest struct {
	HotelName       string `json:"hotel_name" binding:"required,max=255"`
	RoomType        string `json:"room_type" binding:"omitempty,max=100"`
	Capacity        int    `json:"capacity" binding:"omitempty,min=0,max=20"`
	TotalRooms      int    `json:"total_rooms" binding:"required,min=1"`
	PricePerNight   string `json:"price_per_night" binding:"omitempty,max=50"`
	SpecialFeatures string `json:"special_features" binding:"omitempty,max=1000"`
}

// UpdateAccommodationRequest represents request to update a room block
type UpdateAccommodationRequest struct {
	HotelName       *string `json:"hotel_name" binding:"omitempty,max=255"`
	RoomType        *string `json:"room_type" binding:"omitempty,max=100"`
	Capacity        *int    `json:"capacity" binding:"omitempty,min=0,max=20"`
	TotalRooms      *int    `json:"total_rooms" binding:"omitempty,min=1"`
	PricePerNight   *string `json:"price_per_night" binding:"omitempty,max=50"`
	SpecialFeatures *string `json:"special_features" binding:"omitempty,max=1000"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateAccommodationRequest) Validate() (bool, string) {
	if r.HotelName == nil && r.RoomType == nil && r.Capacity == nil &&
		r.TotalRooms == nil && r.PricePerNight == nil && r.SpecialFeatures == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// AllocateRoomRequest assigns a guest to an accommodation
type AllocateRoomRequest struct {
	GuestID         int64      `json:"guest_id" binding:"required,min=1"`
	CheckIn         *time.Time `json:"check_in" binding:"omitempty"`
	CheckOut        *time.Time `json:"check_out" binding:"omitempty"`
	SpecialRequests string     `json:"special_requests" binding:"omitempty,max=1000"`
}

// Validate checks cross-field constraints gin bindings cannot express
func (r *AllocateRoomRequest) Validate() (bool, string) {
	if r.CheckIn != nil && r.CheckOut != nil && r.CheckOut.Before(*r.CheckIn) {
		return false, "Check-out must not precede check-in"
	}
	return true, ""
}

// UpdateAllocationRequest updates an allocation's stay details
type UpdateAllocationRequest struct {
	CheckIn         *time.Time `json:"check_in" binding:"omitempty"`
	CheckOut        *time.Time `json:"check_out" binding:"omitempty"`
	SpecialRequests *string    `json:"special_requests" binding:"omitempty,max=1000"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateAllocationRequest) Validate() (bool, string) {
	if r.CheckIn == nil && r.CheckOut == nil && r.SpecialRequests == nil {
		return false, "At least one field must be provided for update"
	}
	if r.CheckIn != nil && r.CheckOut != nil && r.CheckOut.Before(*r.CheckIn) {
		return false, "Check-out must not precede check-in"
	}
	return true, ""
}
