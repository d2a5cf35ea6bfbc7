package service

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/repository"
)

// GuestService defines the interface for guest management within the active
// event. Every method takes the already-resolved, already-authorized event;
// guests from other events are indistinguishable from absent ones.
type GuestService interface {
	// Create adds a guest to the event
	Create(ctx context.Context, event *domain.Event, req *dto.CreateGuestRequest) (*domain.Guest, error)
	// Get retrieves a guest belonging to the event
	Get(ctx context.Context, event *domain.Event, id int64) (*domain.Guest, error)
	// List retrieves the event's guests, optionally filtered
	List(ctx context.Context, event *domain.Event, query *dto.ListGuestsQuery) ([]*domain.Guest, error)
	// Stats summarizes the event's RSVP state
	Stats(ctx context.Context, event *domain.Event) (*dto.GuestStatsResponse, error)
	// Update updates a guest. Any event reference in the payload is ignored;
	// a guest never moves between events.
	Update(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateGuestRequest) (*domain.Guest, error)
	// Delete removes a guest from the event
	Delete(ctx context.Context, event *domain.Event, id int64) error
	// Contact resolves where messages for a guest should go
	Contact(ctx context.Context, event *domain.Event, id int64) (*dto.GuestContactResponse, error)
	// OwnerEventID reports which event a guest belongs to. Requests that
	// target a guest by id resolve their event context from this before
	// authorization runs, so a stale session cannot redirect them.
	OwnerEventID(ctx context.Context, id int64) (int64, error)
}

// guestService implements GuestService
type guestService struct {
	guestRepo repository.GuestRepository
}

// NewGuestService creates a new GuestService
func NewGuestService(guestRepo repository.GuestRepository) GuestService {
	return &guestService{guestRepo: guestRepo}
}

// Create adds a guest to the event
func (s *guestService) Create(ctx context.Context, event *domain.Event, req *dto.CreateGuestRequest) (*domain.Guest, error) {
	guest, err := domain.NewGuest(event.ID, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	guest.Email = req.Email
	guest.Phone = req.Phone
	if req.Side != "" {
		guest.Side = domain.GuestSide(req.Side)
	}
	guest.Relationship = req.Relationship
	guest.PlusOneAllowed = req.PlusOneAllowed
	guest.PlusOneName = req.PlusOneName
	guest.NumberOfChildren = req.NumberOfChildren
	guest.DietaryRestrictions = req.DietaryRestrictions
	guest.SpecialRequirements = req.SpecialRequirements
	guest.NeedsAccommodation = req.NeedsAccommodation
	guest.Notes = req.Notes

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// Get retrieves a guest belonging to the event
func (s *guestService) Get(ctx context.Context, event *domain.Event, id int64) (*domain.Guest, error) {
	return s.scopedGuest(ctx, event, id)
}

// List retrieves the event's guests
func (s *guestService) List(ctx context.Context, event *domain.Event, query *dto.ListGuestsQuery) ([]*domain.Guest, error) {
	filter := repository.GuestFilter{}
	if query != nil {
		filter.RSVPStatus = domain.RSVPStatus(query.RSVPStatus)
		filter.Side = domain.GuestSide(query.Side)
		filter.Search = query.Search
	}
	return s.guestRepo.ListByEvent(ctx, event.ID, filter)
}

// Stats summarizes the event's RSVP state
func (s *guestService) Stats(ctx context.Context, event *domain.Event) (*dto.GuestStatsResponse, error) {
	counts, err := s.guestRepo.CountByEventAndStatus(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	stats := &dto.GuestStatsResponse{
		Pending:   counts[domain.RSVPPending],
		Confirmed: counts[domain.RSVPConfirmed],
		Declined:  counts[domain.RSVPDeclined],
	}
	stats.Total = stats.Pending + stats.Confirmed + stats.Declined
	return stats, nil
}

// Update updates a guest
func (s *guestService) Update(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateGuestRequest) (*domain.Guest, error) {
	guest, err := s.scopedGuest(ctx, event, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		guest.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		guest.LastName = *req.LastName
	}
	if req.Email != nil {
		guest.Email = *req.Email
	}
	if req.Phone != nil {
		guest.Phone = *req.Phone
	}
	if req.Side != nil {
		guest.Side = domain.GuestSide(*req.Side)
	}
	if req.Relationship != nil {
		guest.Relationship = *req.Relationship
	}
	if req.RSVPStatus != nil {
		guest.RSVPStatus = domain.RSVPStatus(*req.RSVPStatus)
	}
	if req.PlusOneAllowed != nil {
		guest.PlusOneAllowed = *req.PlusOneAllowed
	}
	if req.PlusOneConfirmed != nil {
		guest.PlusOneConfirmed = *req.PlusOneConfirmed
	}
	if req.PlusOneName != nil {
		guest.PlusOneName = *req.PlusOneName
	}
	if req.PlusOneEmail != nil {
		guest.PlusOneEmail = *req.PlusOneEmail
	}
	if req.PlusOnePhone != nil {
		guest.PlusOnePhone = *req.PlusOnePhone
	}
	if req.NumberOfChildren != nil {
		guest.NumberOfChildren = *req.NumberOfChildren
	}
	if req.DietaryRestrictions != nil {
		guest.DietaryRestrictions = *req.DietaryRestrictions
	}
	if req.SpecialRequirements != nil {
		guest.SpecialRequirements = *req.SpecialRequirements
	}
	if req.TableAssignment != nil {
		guest.TableAssignment = *req.TableAssignment
	}
	if req.NeedsAccommodation != nil {
		guest.NeedsAccommodation = *req.NeedsAccommodation
	}
	if req.Notes != nil {
		guest.Notes = *req.Notes
	}

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// Delete removes a guest from the event
func (s *guestService) Delete(ctx context.Context, event *domain.Event, id int64) error {
	if _, err := s.scopedGuest(ctx, event, id); err != nil {
		return err
	}
	return s.guestRepo.Delete(ctx, id)
}

// Contact resolves where messages for a guest should go
func (s *guestService) Contact(ctx context.Context, event *domain.Event, id int64) (*dto.GuestContactResponse, error) {
	guest, err := s.scopedGuest(ctx, event, id)
	if err != nil {
		return nil, err
	}

	contact, ok := guest.EffectiveContact()
	if !ok {
		return nil, ErrNoReachableContact
	}
	return &dto.GuestContactResponse{GuestID: guest.ID, Contact: contact}, nil
}

// OwnerEventID reports which event a guest belongs to
func (s *guestService) OwnerEventID(ctx context.Context, id int64) (int64, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if guest == nil {
		return 0, ErrNotFound
	}
	return guest.EventID, nil
}

// scopedGuest fetches a guest and verifies it belongs to the event
func (s *guestService) scopedGuest(ctx context.Context, event *domain.Event, id int64) (*domain.Guest, error) {
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
