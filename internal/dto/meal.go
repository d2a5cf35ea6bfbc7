package dto

// CreateMealOptionRequest represents request to add a dish to a ceremony
type CreateMealOptionRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Vegetarian  bool   `json:"vegetarian"`
	Vegan       bool   `json:"vegan"`
	GlutenFree  bool   `json:"gluten_free"`
}

// UpdateMealOptionRequest represents request to update a dish
type UpdateMealOptionRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Vegetarian  *bool   `json:"vegetarian" binding:"omitempty"`
	Vegan       *bool   `json:"vegan" binding:"omitempty"`
	GlutenFree  *bool   `json:"gluten_free" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateMealOptionRequest) Validate() (bool, string) {
	if r.Name == nil && r.Description == nil && r.Vegetarian == nil &&
		r.Vegan == nil && r.GlutenFree == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// SelectMealRequest records a guest's dish choice for a ceremony
type SelectMealRequest struct {
	GuestID      int64  `json:"guest_id" binding:"required,min=1"`
	MealOptionID int64  `json:"meal_option_id" binding:"required,min=1"`
	Notes        string `json:"notes" binding:"omitempty,max=500"`
}
