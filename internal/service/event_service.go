package service

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/repository"
)

// EventService defines the interface for wedding event management
type EventService interface {
	// Create creates a new event owned by the principal
	Create(ctx context.Context, principal domain.Principal, req *dto.CreateEventRequest) (*domain.Event, error)
	// Get retrieves an event the principal may access
	Get(ctx context.Context, principal domain.Principal, id int64) (*domain.Event, error)
	// List retrieves the events visible to the principal
	List(ctx context.Context, principal domain.Principal) ([]*domain.Event, error)
	// Update updates an event the principal may access
	Update(ctx context.Context, principal domain.Principal, id int64, req *dto.UpdateEventRequest) (*domain.Event, error)
	// Delete deletes an event. Sessions still pointing at it fall back to
	// another visible event on their next resolution.
	Delete(ctx context.Context, principal domain.Principal, id int64) error
}

// eventService implements EventService
type eventService struct {
	eventRepo repository.EventRepository
	eventCtx  EventContextService
}

// NewEventService creates a new EventService
func NewEventService(eventRepo repository.EventRepository, eventCtx EventContextService) EventService {
	return &eventService{
		eventRepo: eventRepo,
		eventCtx:  eventCtx,
	}
}

// Create creates a new event owned by the principal
func (s *eventService) Create(ctx context.Context, principal domain.Principal, req *dto.CreateEventRequest) (*domain.Event, error) {
	event, err := domain.NewEvent(req.Title, req.CoupleNames, req.StartDate, req.EndDate, req.Location, principal.UserID)
	if err != nil {
		return nil, err
	}
	event.BrideName = req.BrideName
	event.GroomName = req.GroomName
	event.Description = req.Description

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Get retrieves an event the principal may access
func (s *eventService) Get(ctx context.Context, principal domain.Principal, id int64) (*domain.Event, error) {
	return s.eventCtx.Authorize(ctx, principal, id)
}

// List retrieves the events visible to the principal
func (s *eventService) List(ctx context.Context, principal domain.Principal) ([]*domain.Event, error) {
	if principal.Role.BypassesOwnership() {
		return s.eventRepo.List(ctx)
	}
	return s.eventRepo.ListByCreator(ctx, principal.UserID)
}

// Update updates an event the principal may access
func (s *eventService) Update(ctx context.Context, principal domain.Principal, id int64, req *dto.UpdateEventRequest) (*domain.Event, error) {
	event, err := s.eventCtx.Authorize(ctx, principal, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.CoupleNames != nil {
		event.CoupleNames = *req.CoupleNames
	}
	if req.BrideName != nil {
		event.BrideName = *req.BrideName
	}
	if req.GroomName != nil {
		event.GroomName = *req.GroomName
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if event.EndDate.Before(event.StartDate) {
		return nil, domain.ErrEventDatesOutOfOrder
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete deletes an event
func (s *eventService) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if _, err := s.eventCtx.Authorize(ctx, principal, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}
