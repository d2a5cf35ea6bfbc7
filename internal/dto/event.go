package dto

import "time"

// CreateEventRequest represents request to create a new wedding event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,min=2,max=255"`
	CoupleNames string    `json:"couple_names" binding:"required,max=255"`
	BrideName   string    `json:"bride_name" binding:"omitempty,max=255"`
	GroomName   string    `json:"groom_name" binding:"omitempty,max=255"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Location    string    `json:"location" binding:"omitempty,max=255"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
}

// Validate checks cross-field constraints gin bindings cannot express
func (r *CreateEventRequest) Validate() (bool, string) {
	if r.EndDate.Before(r.StartDate) {
		return false, "End date must not precede start date"
	}
	return true, ""
}

// UpdateEventRequest represents request to update event details
type UpdateEventRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=2,max=255"`
	CoupleNames *string    `json:"couple_names" binding:"omitempty,max=255"`
	BrideName   *string    `json:"bride_name" binding:"omitempty,max=255"`
	GroomName   *string    `json:"groom_name" binding:"omitempty,max=255"`
	StartDate   *time.Time `json:"start_date" binding:"omitempty"`
	EndDate     *time.Time `json:"end_date" binding:"omitempty"`
	Location    *string    `json:"location" binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateEventRequest) Validate() (bool, string) {
	if r.Title == nil && r.CoupleNames == nil && r.BrideName == nil && r.GroomName == nil &&
		r.StartDate == nil && r.EndDate == nil && r.Location == nil && r.Description == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// SetCurrentEventRequest selects the caller's active event
type SetCurrentEventRequest struct {
	EventID int64 `json:"event_id" binding:"required,min=1"`
}
