package repository

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// MessageRepository defines the interface for template and message data access
type MessageRepository interface {
	// CreateTemplate creates a new template and fills in its generated id
	CreateTemplate(ctx context.Context, template *domain.MessageTemplate) error
	// GetTemplateByID retrieves a template by ID
	GetTemplateByID(ctx context.Context, id int64) (*domain.MessageTemplate, error)
	// ListTemplatesByEvent retrieves an event's templates
	ListTemplatesByEvent(ctx context.Context, eventID int64) ([]*domain.MessageTemplate, error)
	// UpdateTemplate updates a template
	UpdateTemplate(ctx context.Context, template *domain.MessageTemplate) error
	// DeleteTemplate deletes a template
	DeleteTemplate(ctx context.Context, id int64) error

	// CreateMessage records a new outbound message and fills in its generated id
	CreateMessage(ctx context.Context, message *domain.GuestMessage) error
	// GetMessageByID retrieves a message by ID
	GetMessageByID(ctx context.Context, id int64) (*domain.GuestMessage, error)
	// GetMessageByDedupKey retrieves an event's message by its deduplication
	// key. Keys are unique per event, never across events.
	GetMessageByDedupKey(ctx context.Context, eventID int64, dedupKey string) (*domain.GuestMessage, error)
	// ListMessagesByEvent retrieves an event's messages, newest first
	ListMessagesByEvent(ctx context.Context, eventID int64) ([]*domain.GuestMessage, error)
	// ListMessagesByGuest retrieves a guest's messages, newest first
	ListMessagesByGuest(ctx context.Context, guestID int64) ([]*domain.GuestMessage, error)
	// UpdateMessageStatus advances a message through the dispatch pipeline
	UpdateMessageStatus(ctx context.Context, id int64, status domain.MessageStatus) error
}
