package dto

// CreateTemplateRequest represents request to create a message template
type CreateTemplateRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Channel string `json:"channel" binding:"required,oneof=email whatsapp"`
	Subject string `json:"subject" binding:"omitempty,max=255"`
	Body    string `json:"body" binding:"required,max=10000"`
}

// UpdateTemplateRequest represents request to update a message template
type UpdateTemplateRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Channel *string `json:"channel" binding:"omitempty,oneof=email whatsapp"`
	Subject *string `json:"subject" binding:"omitempty,max=255"`
	Body    *string `json:"body" binding:"omitempty,max=10000"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateTemplateRequest) Validate() (bool, string) {
	if r.Name == nil && r.Channel == nil && r.Subject == nil && r.Body == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// SendMessageRequest dispatches a message to one guest. Either a template or
// an inline body must be supplied.
type SendMessageRequest struct {
	GuestID    int64  `json:"guest_id" binding:"required,min=1"`
	TemplateID int64  `json:"template_id" binding:"omitempty,min=1"`
	Channel    string `json:"channel" binding:"omitempty,oneof=email whatsapp"`
	Subject    string `json:"subject" binding:"omitempty,max=255"`
	Body       string `json:"body" binding:"omitempty,max=10000"`
	// DedupKey makes retries safe: a resend carrying the same key returns
	// the already-recorded message instead of dispatching again
	DedupKey string `json:"dedup_key" binding:"omitempty,max=100"`
}

// Validate checks that the request names a message source
func (r *SendMessageRequest) Validate() (bool, string) {
	if r.TemplateID == 0 && r.Body == "" {
		return false, "Either template_id or body must be provided"
	}
	if r.TemplateID == 0 && r.Channel == "" {
		return false, "Channel is required when sending without a template"
	}
	return true, ""
}
