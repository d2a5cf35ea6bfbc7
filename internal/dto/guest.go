package dto

import "github.com/hobbist2102/rsvp-app/internal/domain"

// CreateGuestRequest represents request to add a guest to the active event
type CreateGuestRequest struct {
	FirstName           string `json:"first_name" binding:"required,max=100"`
	LastName            string `json:"last_name" binding:"required,max=100"`
	Email               string `json:"email" binding:"omitempty,email,max=255"`
	Phone               string `json:"phone" binding:"omitempty,max=50"`
	Side                string `json:"side" binding:"omitempty,oneof=bride groom mutual"`
	Relationship        string `json:"relationship" binding:"omitempty,max=100"`
	PlusOneAllowed      bool   `json:"plus_one_allowed"`
	PlusOneName         string `json:"plus_one_name" binding:"omitempty,max=200"`
	NumberOfChildren    int    `json:"number_of_children" binding:"omitempty,min=0,max=20"`
	DietaryRestrictions string `json:"dietary_restrictions" binding:"omitempty,max=500"`
	SpecialRequirements string `json:"special_requirements" binding:"omitempty,max=500"`
	NeedsAccommodation  bool   `json:"needs_accommodation"`
	Notes               string `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateGuestRequest represents request to update a guest. There is no
// event_id field; a guest never moves between events.
type UpdateGuestRequest struct {
	FirstName           *string `json:"first_name" binding:"omitempty,max=100"`
	LastName            *string `json:"last_name" binding:"omitempty,max=100"`
	Email               *string `json:"email" binding:"omitempty,max=255"`
	Phone               *string `json:"phone" binding:"omitempty,max=50"`
	Side                *string `json:"side" binding:"omitempty,oneof=bride groom mutual"`
	Relationship        *string `json:"relationship" binding:"omitempty,max=100"`
	RSVPStatus          *string `json:"rsvp_status" binding:"omitempty,oneof=pending confirmed declined"`
	PlusOneAllowed      *bool   `json:"plus_one_allowed" binding:"omitempty"`
	PlusOneConfirmed    *bool   `json:"plus_one_confirmed" binding:"omitempty"`
	PlusOneName         *string `json:"plus_one_name" binding:"omitempty,max=200"`
	PlusOneEmail        *string `json:"plus_one_email" binding:"omitempty,max=255"`
	PlusOnePhone        *string `json:"plus_one_phone" binding:"omitempty,max=50"`
	NumberOfChildren    *int    `json:"number_of_children" binding:"omitempty,min=0,max=20"`
	DietaryRestrictions *string `json:"dietary_restrictions" binding:"omitempty,max=500"`
	SpecialRequirements *string `json:"special_requirements" binding:"omitempty,max=500"`
	TableAssignment     *string `json:"table_assignment" binding:"omitempty,max=100"`
	NeedsAccommodation  *bool   `json:"needs_accommodation" binding:"omitempty"`
	Notes               *string `json:"notes" binding:"omitempty,max=2000"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateGuestRequest) Validate() (bool, string) {
	if r.FirstName == nil && r.LastName == nil && r.Email == nil && r.Phone == nil &&
		r.Side == nil && r.Relationship == nil && r.RSVPStatus == nil &&
		r.PlusOneAllowed == nil && r.PlusOneConfirmed == nil && r.PlusOneName == nil &&
		r.PlusOneEmail == nil && r.PlusOnePhone == nil && r.NumberOfChildren == nil &&
		r.DietaryRestrictions == nil && r.SpecialRequirements == nil &&
		r.TableAssignment == nil && r.NeedsAccommodation == nil && r.Notes == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// ListGuestsQuery represents query parameters for listing guests
type ListGuestsQuery struct {
	RSVPStatus string `form:"rsvp_status" binding:"omitempty,oneof=pending confirmed declined"`
	Side       string `form:"side" binding:"omitempty,oneof=bride groom mutual"`
	Search     string `form:"search" binding:"omitempty,max=255"`
}

// GuestStatsResponse summarizes an event's RSVP state
type GuestStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Declined  int `json:"declined"`
}

// GuestContactResponse is a guest's resolved communication target
type GuestContactResponse struct {
	GuestID int64              `json:"guest_id"`
	Contact domain.ContactInfo `json:"contact"`
}
