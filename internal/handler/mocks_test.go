package handler

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
)

// mockEventContextService lets each test script the resolution outcome
type mockEventContextService struct {
	resolveFn      func(ctx context.Context, principal domain.Principal, hint service.ResolveHint) (*domain.Event, error)
	setCurrentFn   func(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error)
	currentFn      func(ctx context.Context, principal domain.Principal) (*domain.Event, error)
	authorizeFn    func(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error)
	clearSessionFn func(ctx context.Context, sessionID string) error

	lastHint service.ResolveHint
}

func (m *mockEventContextService) Resolve(ctx context.Context, principal domain.Principal, hint service.ResolveHint) (*domain.Event, error) {
	m.lastHint = hint
	return m.resolveFn(ctx, principal, hint)
}

func (m *mockEventContextService) SetCurrent(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error) {
	return m.setCurrentFn(ctx, principal, eventID)
}

func (m *mockEventContextService) Current(ctx context.Context, principal domain.Principal) (*domain.Event, error) {
	return m.currentFn(ctx, principal)
}

func (m *mockEventContextService) Authorize(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error) {
	return m.authorizeFn(ctx, principal, eventID)
}

func (m *mockEventContextService) ClearSession(ctx context.Context, sessionID string) error {
	if m.clearSessionFn == nil {
		return nil
	}
	return m.clearSessionFn(ctx, sessionID)
}

type mockEventService struct {
	createFn func(ctx context.Context, principal domain.Principal, req *dto.CreateEventRequest) (*domain.Event, error)
	getFn    func(ctx context.Context, principal domain.Principal, id int64) (*domain.Event, error)
	listFn   func(ctx context.Context, principal domain.Principal) ([]*domain.Event, error)
	updateFn func(ctx context.Context, principal domain.Principal, id int64, req *dto.UpdateEventRequest) (*domain.Event, error)
	deleteFn func(ctx context.Context, principal domain.Principal, id int64) error
}

func (m *mockEventService) Create(ctx context.Context, principal domain.Principal, req *dto.CreateEventRequest) (*domain.Event, error) {
	return m.createFn(ctx, principal, req)
}

func (m *mockEventService) Get(ctx context.Context, principal domain.Principal, id int64) (*domain.Event, error) {
	return m.getFn(ctx, principal, id)
}

func (m *mockEventService) List(ctx context.Context, principal domain.Principal) ([]*domain.Event, error) {
	return m.listFn(ctx, principal)
}

func (m *mockEventService) Update(ctx context.Context, principal domain.Principal, id int64, req *dto.UpdateEventRequest) (*domain.Event, error) {
	return m.updateFn(ctx, principal, id, req)
}

func (m *mockEventService) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	return m.deleteFn(ctx, principal, id)
}

type mockGuestService struct {
	createFn       func(ctx context.Context, event *domain.Event, req *dto.CreateGuestRequest) (*domain.Guest, error)
	getFn          func(ctx context.Context, event *domain.Event, id int64) (*domain.Guest, error)
	listFn         func(ctx context.Context, event *domain.Event, query *dto.ListGuestsQuery) ([]*domain.Guest, error)
	statsFn        func(ctx context.Context, event *domain.Event) (*dto.GuestStatsResponse, error)
	updateFn       func(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateGuestRequest) (*domain.Guest, error)
	deleteFn       func(ctx context.Context, event *domain.Event, id int64) error
	contactFn      func(ctx context.Context, event *domain.Event, id int64) (*dto.GuestContactResponse, error)
	ownerEventIDFn func(ctx context.Context, id int64) (int64, error)
}

func (m *mockGuestService) Create(ctx context.Context, event *domain.Event, req *dto.CreateGuestRequest) (*domain.Guest, error) {
	return m.createFn(ctx, event, req)
}

func (m *mockGuestService) Get(ctx context.Context, event *domain.Event, id int64) (*domain.Guest, error) {
	return m.getFn(ctx, event, id)
}

func (m *mockGuestService) List(ctx context.Context, event *domain.Event, query *dto.ListGuestsQuery) ([]*domain.Guest, error) {
	return m.listFn(ctx, event, query)
}

func (m *mockGuestService) Stats(ctx context.Context, event *domain.Event) (*dto.GuestStatsResponse, error) {
	return m.statsFn(ctx, event)
}

func (m *mockGuestService) Update(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateGuestRequest) (*domain.Guest, error) {
	return m.updateFn(ctx, event, id, req)
}

func (m *mockGuestService) Delete(ctx context.Context, event *domain.Event, id int64) error {
	return m.deleteFn(ctx, event, id)
}

func (m *mockGuestService) Contact(ctx context.Context, event *domain.Event, id int64) (*dto.GuestContactResponse, error) {
	return m.contactFn(ctx, event, id)
}

func (m *mockGuestService) OwnerEventID(ctx context.Context, id int64) (int64, error) {
	return m.ownerEventIDFn(ctx, id)
}
