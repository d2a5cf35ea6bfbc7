package dto

import "time"

// CreateCeremonyRequest represents request to add a ceremony to the active event
type CreateCeremonyRequest struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Date        time.Time `json:"date" binding:"required"`
	StartTime   string    `json:"start_time" binding:"omitempty,max=20"`
	EndTime     string    `json:"end_time" binding:"omitempty,max=20"`
	Location    string    `json:"location" binding:"omitempty,max=255"`
	Attire      string    `json:"attire" binding:"omitempty,max=255"`
	Description string    `json:"description" binding:"omitempty,max=2000"`
}

// UpdateCeremonyRequest represents request to update a ceremony
type UpdateCeremonyRequest struct {
	Name        *string    `json:"name" binding:"omitempty,max=255"`
	Date        *time.Time `json:"date" binding:"omitempty"`
	StartTime   *string    `json:"start_time" binding:"omitempty,max=20"`
	EndTime     *string    `json:"end_time" binding:"omitempty,max=20"`
	Location    *string    `json:"location" binding:"omitempty,max=255"`
	Attire      *string    `json:"attire" binding:"omitempty,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateCeremonyRequest) Validate() (bool, string) {
	if r.Name == nil && r.Date == nil && r.StartTime == nil && r.EndTime == nil &&
		r.Location == nil && r.Attire == nil && r.Description == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// SetAttendanceRequest records whether a guest attends a ceremony
type SetAttendanceRequest struct {
	GuestID   int64 `json:"guest_id" binding:"required,min=1"`
	Attending *bool `json:"attending" binding:"required"`
}
