package service

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/repository"
)

// CeremonyService defines the interface for ceremony management within the
// active event
type CeremonyService interface {
	// Create adds a ceremony to the event
	Create(ctx context.Context, event *domain.Event, req *dto.CreateCeremonyRequest) (*domain.Ceremony, error)
	// Get retrieves a ceremony belonging to the event
	Get(ctx context.Context, event *domain.Event, id int64) (*domain.Ceremony, error)
	// List retrieves the event's ceremonies
	List(ctx context.Context, event *domain.Event) ([]*domain.Ceremony, error)
	// Update updates a ceremony
	Update(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateCeremonyRequest) (*domain.Ceremony, error)
	// Delete removes a ceremony from the event
	Delete(ctx context.Context, event *domain.Event, id int64) error
	// SetAttendance records whether a guest attends a ceremony. Guest and
	// ceremony must both belong to the event.
	SetAttendance(ctx context.Context, event *domain.Event, ceremonyID int64, req *dto.SetAttendanceRequest) (*domain.CeremonyAttendance, error)
	// ListAttendance retrieves a ceremony's attendance records
	ListAttendance(ctx context.Context, event *domain.Event, ceremonyID int64) ([]*domain.CeremonyAttendance, error)
	// OwnerEventID reports which event a ceremony belongs to
	OwnerEventID(ctx context.Context, id int64) (int64, error)
}

// ceremonyService implements CeremonyService
type ceremonyService struct {
	ceremonyRepo repository.CeremonyRepository
	guestRepo    repository.GuestRepository
}

// NewCeremonyService creates a new CeremonyService
func NewCeremonyService(ceremonyRepo repository.CeremonyRepository, guestRepo repository.GuestRepository) CeremonyService {
	return &ceremonyService{
		ceremonyRepo: ceremonyRepo,
		guestRepo:    guestRepo,
	}
}

// Create adds a ceremony to the event
func (s *ceremonyService) Create(ctx context.Context, event *domain.Event, req *dto.CreateCeremonyRequest) (*domain.Ceremony, error) {
	ceremony, err := domain.NewCeremony(event.ID, req.Name, req.Date)
	if err != nil {
		return nil, err
	}
	ceremony.StartTime = req.StartTime
	ceremony.EndTime = req.EndTime
	ceremony.Location = req.Location
	ceremony.Attire = req.Attire
	ceremony.Description = req.Description

	if err := s.ceremonyRepo.Create(ctx, ceremony); err != nil {
		return nil, err
	}
	return ceremony, nil
}

// Get retrieves a ceremony belonging to the event
func (s *ceremonyService) Get(ctx context.Context, event *domain.Event, id int64) (*domain.Ceremony, error) {
	return s.scopedCeremony(ctx, event, id)
}

// List retrieves the event's ceremonies
func (s *ceremonyService) List(ctx context.Context, event *domain.Event) ([]*domain.Ceremony, error) {
	return s.ceremonyRepo.ListByEvent(ctx, event.ID)
}

// Update updates a ceremony
func (s *ceremonyService) Update(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateCeremonyRequest) (*domain.Ceremony, error) {
	ceremony, err := s.scopedCeremony(ctx, event, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ceremony.Name = *req.Name
	}
	if req.Date != nil {
		ceremony.Date = *req.Date
	}
	if req.StartTime != nil {
		ceremony.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		ceremony.EndTime = *req.EndTime
	}
	if req.Location != nil {
		ceremony.Location = *req.Location
	}
	if req.Attire != nil {
		ceremony.Attire = *req.Attire
	}
	if req.Description != nil {
		ceremony.Description = *req.Description
	}

	if err := s.ceremonyRepo.Update(ctx, ceremony); err != nil {
		return nil, err
	}
	return ceremony, nil
}

// Delete removes a ceremony from the event
func (s *ceremonyService) Delete(ctx context.Context, event *domain.Event, id int64) error {
	if _, err := s.scopedCeremony(ctx, event, id); err != nil {
		return err
	}
	return s.ceremonyRepo.Delete(ctx, id)
}

// SetAttendance records whether a guest attends a ceremony. Both sides of
// the relation are verified against the event before the write; a pairing
// across events fails even when each side is valid on its own.
func (s *ceremonyService) SetAttendance(ctx context.Context, event *domain.Event, ceremonyID int64, req *dto.SetAttendanceRequest) (*domain.CeremonyAttendance, error) {
	ceremony, err := s.scopedCeremony(ctx, event, ceremonyID)
	if err != nil {
		return nil, err
	}

	guest, err := s.guestRepo.GetByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrNotFound
	}
	if err := verifyScope(event.ID, ceremony.EventID, guest.EventID); err != nil {
		return nil, err
	}

	attendance := &domain.CeremonyAttendance{
		GuestID:    guest.ID,
		CeremonyID: ceremony.ID,
		Attending:  *req.Attending,
	}
	if err := s.ceremonyRepo.UpsertAttendance(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// ListAttendance retrieves a ceremony's attendance records
func (s *ceremonyService) ListAttendance(ctx context.Context, event *domain.Event, ceremonyID int64) ([]*domain.CeremonyAttendance, error) {
	if _, err := s.scopedCeremony(ctx, event, ceremonyID); err != nil {
		return nil, err
	}
	return s.ceremonyRepo.ListAttendanceByCeremony(ctx, ceremonyID)
}

// OwnerEventID reports which event a ceremony belongs to
func (s *ceremonyService) OwnerEventID(ctx context.Context, id int64) (int64, error) {
	ceremony, err := s.ceremonyRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if ceremony == nil {
		return 0, ErrNotFound
	}
	return ceremony.EventID, nil
}

// scopedCeremony fetches a ceremony and verifies it belongs to the event
func (s *ceremonyService) scopedCeremony(ctx context.Context, event *domain.Event, id int64) (*domain.Ceremony, error) {
	ceremony, err := s.ceremonyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ceremony == nil {
		return nil, ErrNotFound
	}
	if err := verifyScope(event.ID, ceremony.EventID); err != nil {
		return nil, err
	}
	return ceremony, nil
}
