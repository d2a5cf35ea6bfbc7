package service

import (
	"context"
	"time"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/repository"
)

// AccommodationService defines the interface for room block and allocation
// management within the active event
type AccommodationService interface {
	// Create adds a room block to the event
	Create(ctx context.Context, event *domain.Event, req *dto.CreateAccommodationRequest) (*domain.Accommodation, error)
	// Get retrieves a room block belonging to the event
	Get(ctx context.Context, event *domain.Event, id int64) (*domain.Accommodation, error)
	// List retrieves the event's room blocks
	List(ctx context.Context, event *domain.Event) ([]*domain.Accommodation, error)
	// Update updates a room block
	Update(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateAccommodationRequest) (*domain.Accommodation, error)
	// Delete removes a room block and its allocations
	Delete(ctx context.Context, event *domain.Event, id int64) error
	// Allocate assigns a guest a room. Guest and accommodation must both
	// belong to the event.
	Allocate(ctx context.Context, event *domain.Event, accommodationID int64, req *dto.AllocateRoomRequest) (*domain.RoomAllocation, error)
	// ListAllocations retrieves a room block's allocations
	ListAllocations(ctx context.Context, event *domain.Event, accommodationID int64) ([]*domain.RoomAllocation, error)
	// UpdateAllocation updates an allocation's stay details
	UpdateAllocation(ctx context.Context, event *domain.Event, allocationID int64, req *dto.UpdateAllocationRequest) (*domain.RoomAllocation, error)
	// Deallocate releases a guest's room
	Deallocate(ctx context.Context, event *domain.Event, allocationID int64) error
	// OwnerEventID reports which event a room block belongs to
	OwnerEventID(ctx context.Context, id int64) (int64, error)
	// AllocationOwnerEventID reports which event an allocation belongs to,
	// through its room block
	AllocationOwnerEventID(ctx context.Context, allocationID int64) (int64, error)
}

// accommodationService implements AccommodationService
type accommodationService struct {
	accommodationRepo repository.AccommodationRepository
	guestRepo         repository.GuestRepository
}

// NewAccommodationService creates a new AccommodationService
func NewAccommodationService(accommodationRepo repository.AccommodationRepository, guestRepo repository.GuestRepository) AccommodationService {
	return &accommodationService{
		accommodationRepo: accommodationRepo,
		guestRepo:         guestRepo,
	}
}

// Create adds a room block to the event
func (s *accommodationService) Create(ctx context.Context, event *domain.Event, req *dto.CreateAccommodationRequest) (*domain.Accommodation, error) {
	accommodation, err := domain.NewAccommodation(event.ID, req.HotelName, req.TotalRooms)
	if err != nil {
		return nil, err
	}
	accommodation.RoomType = req.RoomType
	accommodation.Capacity = req.Capacity
	accommodation.PricePerNight = req.PricePerNight
	accommodation.SpecialFeatures = req.SpecialFeatures

	if err := s.accommodationRepo.Create(ctx, accommodation); err != nil {
		return nil, err
	}
	return accommodation, nil
}

// Get retrieves a room block belonging to the event
func (s *accommodationService) Get(ctx context.Context, event *domain.Event, id int64) (*domain.Accommodation, error) {
	return s.scopedAccommodation(ctx, event, id)
}

// List retrieves the event's room blocks
func (s *accommodationService) List(ctx context.Context, event *domain.Event) ([]*domain.Accommodation, error) {
	return s.accommodationRepo.ListByEvent(ctx, event.ID)
}

// Update updates a room block
func (s *accommodationService) Update(ctx context.Context, event *domain.Event, id int64, req *dto.UpdateAccommodationRequest) (*domain.Accommodation, error) {
	accommodation, err := s.scopedAccommodation(ctx, event, id)
	if err != nil {
		return nil, err
	}

	if req.HotelName != nil {
		accommodation.HotelName = *req.HotelName
	}
	if req.RoomType != nil {
		accommodation.RoomType = *req.RoomType
	}
	if req.Capacity != nil {
		accommodation.Capacity = *req.Capacity
	}
	if req.TotalRooms != nil {
		// Shrinking below what is already allocated would strand guests
		if *req.TotalRooms < accommodation.AllocatedRooms {
			return nil, domain.ErrAllocationNoRoomsLeft
		}
		accommodation.TotalRooms = *req.TotalRooms
	}
	if req.PricePerNight != nil {
		accommodation.PricePerNight = *req.PricePerNight
	}
	if req.SpecialFeatures != nil {
		accommodation.SpecialFeatures = *req.SpecialFeatures
	}

	if err := s.accommodationRepo.Update(ctx, accommodation); err != nil {
		return nil, err
	}
	return accommodation, nil
}

// Delete removes a room block and its allocations
func (s *accommodationService) Delete(ctx context.Context, event *domain.Event, id int64) error {
	if _, err := s.scopedAccommodation(ctx, event, id); err != nil {
		return err
	}
	return s.accommodationRepo.Delete(ctx, id)
}

// Allocate assigns a guest a room. Both sides of the relation are verified
// against the event before the write.
func (s *accommodationService) Allocate(ctx context.Context, event *domain.Event, accommodationID int64, req *dto.AllocateRoomRequest) (*domain.RoomAllocation, error) {
	accommodation, err := s.scopedAccommodation(ctx, event, accommodationID)
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
	if err := verifyScope(event.ID, accommodation.EventID, guest.EventID); err != nil {
		return nil, err
	}

	now := time.Now()
	allocation := &domain.RoomAllocation{
		AccommodationID: accommodation.ID,
		GuestID:         guest.ID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		SpecialRequests: req.SpecialRequests,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.accommodationRepo.CreateAllocation(ctx, allocation); err != nil {
		return nil, err
	}
	return allocation, nil
}

// ListAllocations retrieves a room block's allocations
func (s *accommodationService) ListAllocations(ctx context.Context, event *domain.Event, accommodationID int64) ([]*domain.RoomAllocation, error) {
	if _, err := s.scopedAccommodation(ctx, event, accommodationID); err != nil {
		return nil, err
	}
	return s.accommodationRepo.ListAllocationsByAccommodation(ctx, accommodationID)
}

// UpdateAllocation updates an allocation's stay details
func (s *accommodationService) UpdateAllocation(ctx context.Context, event *domain.Event, allocationID int64, req *dto.UpdateAllocationRequest) (*domain.RoomAllocation, error) {
	allocation, err := s.scopedAllocation(ctx, event, allocationID)
	if err != nil {
		return nil, err
	}

	if req.CheckIn != nil {
		allocation.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		allocation.CheckOut = req.CheckOut
	}
	if req.SpecialRequests != nil {
		allocation.SpecialRequests = *req.SpecialRequests
	}

	if err := s.accommodationRepo.UpdateAllocation(ctx, allocation); err != nil {
		return nil, err
	}
	return allocation, nil
}

// Deallocate releases a guest's room
func (s *accommodationService) Deallocate(ctx context.Context, event *domain.Event, allocationID int64) error {
	if _, err := s.scopedAllocation(ctx, event, allocationID); err != nil {
		return err
	}
	return s.accommodationRepo.DeleteAllocation(ctx, allocationID)
}

// OwnerEventID reports which event a room block belongs to
func (s *accommodationService) OwnerEventID(ctx context.Context, id int64) (int64, error) {
	accommodation, err := s.accommodationRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if accommodation == nil {
		return 0, ErrNotFound
	}
	return accommodation.EventID, nil
}

// AllocationOwnerEventID reports which event an allocation belongs to
func (s *accommodationService) AllocationOwnerEventID(ctx context.Context, allocationID int64) (int64, error) {
	allocation, err := s.accommodationRepo.GetAllocationByID(ctx, allocationID)
	if err != nil {
		return 0, err
	}
	if allocation == nil {
		return 0, ErrNotFound
	}
	return s.OwnerEventID(ctx, allocation.AccommodationID)
}

// scopedAccommodation fetches a room block and verifies it belongs to the event
func (s *accommodationService) scopedAccommodation(ctx context.Context, event *domain.Event, id int64) (*domain.Accommodation, error) {
	accommodation, err := s.accommodationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if accommodation == nil {
		return nil, ErrNotFound
	}
	if err := verifyScope(event.ID, accommodation.EventID); err != nil {
		return nil, err
	}
	return accommodation, nil
}

// scopedAllocation fetches an allocation and verifies its accommodation
// belongs to the event
func (s *accommodationService) scopedAllocation(ctx context.Context, event *domain.Event, id int64) (*domain.RoomAllocation, error) {
	allocation, err := s.accommodationRepo.GetAllocationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if allocation == nil {
		return nil, ErrNotFound
	}
	if _, err := s.scopedAccommodation(ctx, event, allocation.AccommodationID); err != nil {
		return nil, err
	}
	return allocation, nil
}
