package service

import (
	"context"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/repository"
)

// MealService defines the interface for meal option and selection management
// within the active event. Meal options are scoped through their ceremony.
type MealService interface {
	// CreateOption adds a dish to a ceremony of the event
	CreateOption(ctx context.Context, event *domain.Event, ceremonyID int64, req *dto.CreateMealOptionRequest) (*domain.MealOption, error)
	// GetOption retrieves a dish belonging to the event
	GetOption(ctx context.Context, event *domain.Event, id int64) (*domain.MealOption, error)
	// ListOptions retrieves a ceremony's dishes
	ListOptions(ctx context.Context, event *domain.Event, ceremonyID int64) ([]*domain.MealOption, error)
	// UpdateOption updates a dish
	UpdateOption(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateMealOptionRequest) (*domain.MealOption, error)
	// DeleteOption removes a dish and its selections
	DeleteOption(ctx context.Context, event *domain.Event, id int64) error
	// Select records a guest's dish choice for a ceremony. Guest, ceremony,
	// and option must all belong to the event; changing the referenced
	// option re-verifies the new option's event, not just the old one.
	Select(ctx context.Context, event *domain.Event, ceremonyID int64, req *dto.SelectMealRequest) (*domain.MealSelection, error)
	// ListSelections retrieves a ceremony's meal selections
	ListSelections(ctx context.Context, event *domain.Event, ceremonyID int64) ([]*domain.MealSelection, error)
	// DeleteSelection removes a selection
	DeleteSelection(ctx context.Context, event *domain.Event, id int64) error
	// CeremonyOwnerEventID reports which event a ceremony belongs to
	CeremonyOwnerEventID(ctx context.Context, ceremonyID int64) (int64, error)
	// OptionOwnerEventID reports which event a dish belongs to
	OptionOwnerEventID(ctx context.Context, id int64) (int64, error)
	// SelectionOwnerEventID reports which event a selection belongs to,
	// through its ceremony
	SelectionOwnerEventID(ctx context.Context, id int64) (int64, error)
}

// mealService implements MealService
type mealService struct {
	mealRepo     repository.MealRepository
	ceremonyRepo repository.CeremonyRepository
	guestRepo    repository.GuestRepository
}

// NewMealService creates a new MealService
func NewMealService(mealRepo repository.MealRepository, ceremonyRepo repository.CeremonyRepository, guestRepo repository.GuestRepository) MealService {
	return &mealService{
		mealRepo:     mealRepo,
		ceremonyRepo: ceremonyRepo,
		guestRepo:    guestRepo,
	}
}

// CreateOption adds a dish to a ceremony of the event
func (s *mealService) CreateOption(ctx context.Context, event *domain.Event, ceremonyID int64, req *dto.CreateMealOptionRequest) (*domain.MealOption, error) {
	ceremony, err := s.scopedCeremony(ctx, event, ceremonyID)
	if err != nil {
		return nil, err
	}

	option, err := domain.NewMealOption(ceremony.ID, event.ID, req.Name)
	if err != nil {
		return nil, err
	}
	option.Description = req.Description
	option.Vegetarian = req.Vegetarian
	option.Vegan = req.Vegan
	option.GlutenFree = req.GlutenFree

	if err := s.mealRepo.CreateOption(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// GetOption retrieves a dish belonging to the event
func (s *mealService) GetOption(ctx context.Context, event *domain.Event, id int64) (*domain.MealOption, error) {
	return s.scopedOption(ctx, event, id)
}

// ListOptions retrieves a ceremony's dishes
func (s *mealService) ListOptions(ctx context.Context, event *domain.Event, ceremonyID int64) ([]*domain.MealOption, error) {
	if _, err := s.scopedCeremony(ctx, event, ceremonyID); err != nil {
		return nil, err
	}
	return s.mealRepo.ListOptionsByCeremony(ctx, ceremonyID)
}

// UpdateOption updates a dish
func (s *mealService) UpdateOption(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateMealOptionRequest) (*domain.MealOption, error) {
	option, err := s.scopedOption(ctx, event, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		option.Name = *req.Name
	}
	if req.Description != nil {
		option.Description = *req.Description
	}
	if req.Vegetarian != nil {
		option.Vegetarian = *req.Vegetarian
	}
	if req.Vegan != nil {
		option.Vegan = *req.Vegan
	}
	if req.GlutenFree != nil {
		option.GlutenFree = *req.GlutenFree
	}

	if err := s.mealRepo.UpdateOption(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// DeleteOption removes a dish and its selections
func (s *mealService) DeleteOption(ctx context.Context, event *domain.Event, id int64) error {
	if _, err := s.scopedOption(ctx, event, id); err != nil {
		return err
	}
	return s.mealRepo.DeleteOption(ctx, id)
}

// Select records a guest's dish choice for a ceremony. Every participant in
// the relation is verified against the event before the write, including a
// newly referenced option when an existing selection is being changed.
func (s *mealService) Select(ctx context.Context, event *domain.Event, ceremonyID int64, req *dto.SelectMealRequest) (*domain.MealSelection, error) {
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

	option, err := s.scopedOption(ctx, event, req.MealOptionID)
	if err != nil {
		return nil, err
	}
	// The option must also be served at this ceremony
	if option.CeremonyID != ceremony.ID {
		return nil, ErrNotFound
	}

	if err := verifyScope(event.ID, ceremony.EventID, guest.EventID, option.EventID); err != nil {
		return nil, err
	}

	selection := &domain.MealSelection{
		GuestID:      guest.ID,
		CeremonyID:   ceremony.ID,
		MealOptionID: option.ID,
		Notes:        req.Notes,
	}
	if err := s.mealRepo.UpsertSelection(ctx, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// ListSelections retrieves a ceremony's meal selections
func (s *mealService) ListSelections(ctx context.Context, event *domain.Event, ceremonyID int64) ([]*domain.MealSelection, error) {
	if _, err := s.scopedCeremony(ctx, event, ceremonyID); err != nil {
		return nil, err
	}
	return s.mealRepo.ListSelectionsByCeremony(ctx, ceremonyID)
}

// DeleteSelection removes a selection
func (s *mealService) DeleteSelection(ctx context.Context, event *domain.Event, id int64) error {
	selection, err := s.mealRepo.GetSelectionByID(ctx, id)
	if err != nil {
		return err
	}
	if selection == nil {
		return ErrNotFound
	}
	if _, err := s.scopedCeremony(ctx, event, selection.CeremonyID); err != nil {
		return err
	}
	return s.mealRepo.DeleteSelection(ctx, id)
}

// CeremonyOwnerEventID reports which event a ceremony belongs to
func (s *mealService) CeremonyOwnerEventID(ctx context.Context, ceremonyID int64) (int64, error) {
	ceremony, err := s.ceremonyRepo.GetByID(ctx, ceremonyID)
	if err != nil {
		return 0, err
	}
	if ceremony == nil {
		return 0, ErrNotFound
	}
	return ceremony.EventID, nil
}

// OptionOwnerEventID reports which event a dish belongs to
func (s *mealService) OptionOwnerEventID(ctx context.Context, id int64) (int64, error) {
	option, err := s.mealRepo.GetOptionByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if option == nil {
		return 0, ErrNotFound
	}
	return option.EventID, nil
}

// SelectionOwnerEventID reports which event a selection belongs to
func (s *mealService) SelectionOwnerEventID(ctx context.Context, id int64) (int64, error) {
	selection, err := s.mealRepo.GetSelectionByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if selection == nil {
		return 0, ErrNotFound
	}
	return s.CeremonyOwnerEventID(ctx, selection.CeremonyID)
}

// scopedOption fetches a dish and verifies it belongs to the event
func (s *mealService) scopedOption(ctx context.Context, event *domain.Event, id int64) (*domain.MealOption, error) {
	option, err := s.mealRepo.GetOptionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, ErrNotFound
	}
	if err := verifyScope(event.ID, option.EventID); err != nil {
		return nil, err
	}
	return option, nil
}

// scopedCeremony fetches a ceremony and verifies it belongs to the event
func (s *mealService) scopedCeremony(ctx context.Context, event *domain.Event, id int64) (*domain.Ceremony, error) {
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
