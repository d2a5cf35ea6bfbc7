package domain

import (
	"errors"
	"time"
)

var (
	ErrTemplateNameRequired = errors.New("template name is required")
	ErrTemplateBodyRequired = errors.New("template body is required")
	ErrMessageNoRecipient   = errors.New("guest has no reachable contact")
	ErrInvalidChannel       = errors.New("invalid message channel")
)

// Channel is the delivery medium for guest communication
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// IsValid checks if the channel is one of the defined channels
func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelWhatsApp:
		return true
	default:
		return false
	}
}

// MessageStatus tracks a message through the dispatch pipeline
type MessageStatus string

const (
	MessageQueued MessageStatus = "queued"
	MessageSent   MessageStatus = "sent"
	MessageFailed MessageStatus = "failed"
)

// IsValid checks if the status is one of the defined statuses
func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageQueued, MessageSent, MessageFailed:
		return true
	default:
		return false
	}
}

// MessageTemplate is a reusable event-scoped message body. Placeholders like
// {{guest_name}} are substituted at send time.
type MessageTemplate struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	Name      string    `json:"name"`
	Channel   Channel   `json:"channel"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMessageTemplate builds a validated template under the given event
func NewMessageTemplate(eventID int64, name string, channel Channel, body string) (*MessageTemplate, error) {
	if name == "" {
		return nil, ErrTemplateNameRequired
	}
	if body == "" {
		return nil, ErrTemplateBodyRequired
	}
	if !channel.IsValid() {
		return nil, ErrInvalidChannel
	}

	now := time.Now()
	return &MessageTemplate{
		EventID:   eventID,
		Name:      name,
		Channel:   channel,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GuestMessage is a single outbound message to a guest. The recipient is the
// guest's effective contact resolved at send time; delivery happens outside
// this service past the broker hand-off.
type GuestMessage struct {
	ID             int64         `json:"id"`
	EventID        int64         `json:"event_id"`
	GuestID        int64         `json:"guest_id"`
	Channel        Channel       `json:"channel"`
	RecipientName  string        `json:"recipient_name"`
	RecipientEmail string        `json:"recipient_email,omitempty"`
	RecipientPhone string        `json:"recipient_phone,omitempty"`
	Subject        string        `json:"subject,omitempty"`
	Body           string        `json:"body"`
	Status         MessageStatus `json:"status"`
	DedupKey       string        `json:"dedup_key"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
