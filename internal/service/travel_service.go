package service

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/repository"
)

// TravelService defines the interface for guest travel logistics. Travel
// records are scoped through their guest.
type TravelService interface {
	// Upsert records or replaces a guest's travel info, one record per guest
	Upsert(ctx context.Context, event *domain.Event, guestID int64, req *dto.UpsertTravelRequest) (*domain.TravelInfo, error)
	// Get retrieves a guest's travel info
	Get(ctx context.Context, event *domain.Event, guestID int64) (*domain.TravelInfo, error)
	// List retrieves travel info for all of the event's guests
	List(ctx context.Context, event *domain.Event) ([]*domain.TravelInfo, error)
	// Delete removes a guest's travel info
	Delete(ctx context.Context, event *domain.Event, guestID int64) error
	// GuestOwnerEventID reports which event a guest belongs to. Travel
	// routes are keyed by guest id, so resolution starts from the guest.
	GuestOwnerEventID(ctx context.Context, guestID int64) (int64, error)
}

// travelService implements TravelService
type travelService struct {
	travelRepo repository.TravelRepository
	guestRepo  repository.GuestRepository
}

// NewTravelService creates a new TravelService
func NewTravelService(travelRepo repository.TravelRepository, guestRepo repository.GuestRepository) TravelService {
	return &travelService{
		travelRepo: travelRepo,
		guestRepo:  guestRepo,
	}
}

// Upsert records or replaces a guest's travel info
func (s *travelService) Upsert(ctx context.Context, event *domain.Event, guestID int64, req *dto.UpsertTravelRequest) (*domain.TravelInfo, error) {
	guest, err := s.scopedGuest(ctx, event, guestID)
	if err != nil {
		return nil, err
	}

	info := &domain.TravelInfo{
		GuestID:       guest.ID,
		Mode:          domain.TravelMode(req.Mode),
		ArrivalDate:   req.ArrivalDate,
		ArrivalTime:   req.ArrivalTime,
		DepartureDate: req.DepartureDate,
		DepartureTime: req.DepartureTime,
		Origin:        req.Origin,
		FlightNumber:  req.FlightNumber,
		NeedsPickup:   req.NeedsPickup,
		NeedsDrop:     req.NeedsDrop,
	}
	if err := s.travelRepo.Upsert(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

// Get retrieves a guest's travel info
func (s *travelService) Get(ctx context.Context, event *domain.Event, guestID int64) (*domain.TravelInfo, error) {
	if _, err := s.scopedGuest(ctx, event, guestID); err != nil {
		return nil, err
	}

	info, err := s.travelRepo.GetByGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrNotFound
	}
	return info, nil
}

// List retrieves travel info for all of the event's guests
func (s *travelService) List(ctx context.Context, event *domain.Event) ([]*domain.TravelInfo, error) {
	return s.travelRepo.ListByEvent(ctx, event.ID)
}

// Delete removes a guest's travel info
func (s *travelService) Delete(ctx context.Context, event *domain.Event, guestID int64) error {
	if _, err := s.scopedGuest(ctx, event, guestID); err != nil {
		return err
	}
	return s.travelRepo.DeleteByGuest(ctx, guestID)
}

// GuestOwnerEventID reports which event a guest belongs to
func (s *travelService) GuestOwnerEventID(ctx context.Context, guestID int64) (int64, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return 0, err
	}
	if guest == nil {
		return 0, ErrNotFound
	}
	return guest.EventID, nil
}

// scopedGuest fetches a guest and verifies it belongs to the event
func (s *travelService) scopedGuest(ctx context.Context, event *domain.Event, id int64) (*domain.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrNotFound
	}
	if err := verifyScope(event.ID, guest.EventID); err != nil {
		return nil, err
	}
	return guest, nil
}
