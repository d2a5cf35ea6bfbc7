package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/messaging"
	"github.com/hobbist2102/rsvp-app/internal/repository"
	"github.com/hobbist2102/rsvp-app/pkg/logger"
	"go.uber.org/zap"
)

// MessageService defines the interface for guest communication within the
// active event. Dispatch ends at the acknowledged broker publish; provider
// delivery happens downstream.
type MessageService interface {
	// CreateTemplate adds a reusable message template to the event
	CreateTemplate(ctx context.Context, event *domain.Event, req *dto.CreateTemplateRequest) (*domain.MessageTemplate, error)
	// GetTemplate retrieves a template belonging to the event
	GetTemplate(ctx context.Context, event *domain.Event, id int64) (*domain.MessageTemplate, error)
	// ListTemplates retrieves the event's templates
	ListTemplates(ctx context.Context, event *domain.Event) ([]*domain.MessageTemplate, error)
	// UpdateTemplate updates a template
	UpdateTemplate(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateTemplateRequest) (*domain.MessageTemplate, error)
	// DeleteTemplate removes a template
	DeleteTemplate(ctx context.Context, event *domain.Event, id int64) error
	// Send dispatches a message to a guest's effective contact
	Send(ctx context.Context, event *domain.Event, req *dto.SendMessageRequest) (*domain.GuestMessage, error)
	// ListMessages retrieves the event's messages, newest first
	ListMessages(ctx context.Context, event *domain.Event) ([]*domain.GuestMessage, error)
	// ListGuestMessages retrieves one guest's messages, newest first
	ListGuestMessages(ctx context.Context, event *domain.Event, guestID int64) ([]*domain.GuestMessage, error)
	// TemplateOwnerEventID reports which event a template belongs to
	TemplateOwnerEventID(ctx context.Context, id int64) (int64, error)
	// GuestOwnerEventID reports which event a guest belongs to
	GuestOwnerEventID(ctx context.Context, guestID int64) (int64, error)
}

// messageService implements MessageService
type messageService struct {
	messageRepo repository.MessageRepository
	guestRepo   repository.GuestRepository
	publisher   messaging.Publisher
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo repository.MessageRepository, guestRepo repository.GuestRepository, publisher messaging.Publisher) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		guestRepo:   guestRepo,
		publisher:   publisher,
	}
}

// CreateTemplate adds a reusable message template to the event
func (s *messageService) CreateTemplate(ctx context.Context, event *domain.Event, req *dto.CreateTemplateRequest) (*domain.MessageTemplate, error) {
	template, err := domain.NewMessageTemplate(event.ID, req.Name, domain.Channel(req.Channel), req.Body)
	if err != nil {
		return nil, err
	}
	template.Subject = req.Subject

	if err := s.messageRepo.CreateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// GetTemplate retrieves a template belonging to the event
func (s *messageService) GetTemplate(ctx context.Context, event *domain.Event, id int64) (*domain.MessageTemplate, error) {
	return s.scopedTemplate(ctx, event, id)
}

// ListTemplates retrieves the event's templates
func (s *messageService) ListTemplates(ctx context.Context, event *domain.Event) ([]*domain.MessageTemplate, error) {
	return s.messageRepo.ListTemplatesByEvent(ctx, event.ID)
}

// UpdateTemplate updates a template
func (s *messageService) UpdateTemplate(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateTemplateRequest) (*domain.MessageTemplate, error) {
	template, err := s.scopedTemplate(ctx, event, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Channel != nil {
		template.Channel = domain.Channel(*req.Channel)
	}
	if req.Subject != nil {
		template.Subject = *req.Subject
	}
	if req.Body != nil {
		template.Body = *req.Body
	}

	if err := s.messageRepo.UpdateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// DeleteTemplate removes a template
func (s *messageService) DeleteTemplate(ctx context.Context, event *domain.Event, id int64) error {
	if _, err := s.scopedTemplate(ctx, event, id); err != nil {
		return err
	}
	return s.messageRepo.DeleteTemplate(ctx, id)
}

// Send dispatches a message to a guest's effective contact. The message is
// recorded before the publish; a broker failure marks it failed and surfaces
// as a server error so the client never believes an unacknowledged message
// went out.
func (s *messageService) Send(ctx context.Context, event *domain.Event, req *dto.SendMessageRequest) (*domain.GuestMessage, error) {
	guest, err := s.guestRepo.GetByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrNotFound
	}
	if err := verifyScope(event.ID, guest.EventID); err != nil {
		return nil, err
	}

	// Dedup keys are scoped per event so a key replayed from another tenant
	// can never surface that tenant's message. A key reused for a different
	// guest within the event is a conflict, not a replay.
	if req.DedupKey != "" {
		existing, err := s.messageRepo.GetMessageByDedupKey(ctx, event.ID, req.DedupKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if existing.GuestID != guest.ID {
				return nil, ErrDuplicateDedupKey
			}
			return existing, nil
		}
	}

	channel := domain.Channel(req.Channel)
	subject := req.Subject
	body := req.Body
	if req.TemplateID > 0 {
		template, err := s.scopedTemplate(ctx, event, req.TemplateID)
		if err != nil {
			return nil, err
		}
		channel = template.Channel
		if subject == "" {
			subject = template.Subject
		}
		if body == "" {
			body = template.Body
		}
	}

	contact, ok := guest.EffectiveContact()
	if !ok {
		return nil, ErrNoReachableContact
	}
	switch channel {
	case domain.ChannelEmail:
		if contact.Email == "" {
			return nil, ErrNoReachableContact
		}
	case domain.ChannelWhatsApp:
		if contact.Phone == "" {
			return nil, ErrNoReachableContact
		}
	default:
		return nil, domain.ErrInvalidChannel
	}

	dedupKey := req.DedupKey
	if dedupKey == "" {
		dedupKey = uuid.NewString()
	}

	now := time.Now()
	message := &domain.GuestMessage{
		EventID:        event.ID,
		GuestID:        guest.ID,
		Channel:        channel,
		RecipientName:  contact.Name,
		RecipientEmail: contact.Email,
		RecipientPhone: contact.Phone,
		Subject:        substitute(subject, event, guest),
		Body:           substitute(body, event, guest),
		Status:         domain.MessageQueued,
		DedupKey:       dedupKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, dedupKey, message); err != nil {
		logger.WithContext(ctx).Error("message publish failed",
			zap.Int64("message_id", message.ID),
			zap.Int64("guest_id", guest.ID),
			zap.Error(err))
		if updErr := s.messageRepo.UpdateMessageStatus(ctx, message.ID, domain.MessageFailed); updErr != nil {
			logger.WithContext(ctx).Error("failed to mark message failed",
				zap.Int64("message_id", message.ID),
				zap.Error(updErr))
		}
		return nil, ErrDispatchFailed
	}

	// Sent here means handed off to the broker, not provider-delivered
	if err := s.messageRepo.UpdateMessageStatus(ctx, message.ID, domain.MessageSent); err != nil {
		return nil, err
	}
	message.Status = domain.MessageSent
	return message, nil
}

// ListMessages retrieves the event's messages, newest first
func (s *messageService) ListMessages(ctx context.Context, event *domain.Event) ([]*domain.GuestMessage, error) {
	return s.messageRepo.ListMessagesByEvent(ctx, event.ID)
}

// ListGuestMessages retrieves one guest's messages, newest first
func (s *messageService) ListGuestMessages(ctx context.Context, event *domain.Event, guestID int64) ([]*domain.GuestMessage, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrNotFound
	}
	if err := verifyScope(event.ID, guest.EventID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListMessagesByGuest(ctx, guestID)
}

// TemplateOwnerEventID reports which event a template belongs to
func (s *messageService) TemplateOwnerEventID(ctx context.Context, id int64) (int64, error) {
	template, err := s.messageRepo.GetTemplateByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if template == nil {
		return 0, ErrNotFound
	}
	return template.EventID, nil
}

// GuestOwnerEventID reports which event a guest belongs to
func (s *messageService) GuestOwnerEventID(ctx context.Context, guestID int64) (int64, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return 0, err
	}
	if guest == nil {
		return 0, ErrNotFound
	}
	return guest.EventID, nil
}

// scopedTemplate fetches a template and verifies it belongs to the event
func (s *messageService) scopedTemplate(ctx context.Context, event *domain.Event, id int64) (*domain.MessageTemplate, error) {
	template, err := s.messageRepo.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, ErrNotFound
	}
	if err := verifyScope(event.ID, template.EventID); err != nil {
		return nil, err
	}
	return template, nil
}

// substitute fills template placeholders from the event and guest
func substitute(text string, event *domain.Event, guest *domain.Guest) string {
	replacer := strings.NewReplacer(
		"{{guest_name}}", guest.FullName(),
		"{{first_name}}", guest.FirstName,
		"{{event_title}}", event.Title,
		"{{couple_names}}", event.CoupleNames,
	)
	return replacer.Replace(text)
}
