package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
)

func seedAccommodation(t *testing.T, repo *mockAccommodationRepo, eventID int64, rooms int) *domain.Accommodation {
	t.Helper()
	accommodation, err := domain.NewAccommodation(eventID, "Lake Palace", rooms)
	if err != nil {
		t.Fatalf("NewAccommodation failed: %v", err)
	}
	if err := repo.Create(context.Background(), accommodation); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return accommodation
}

func TestAccommodationService_AllocateAndRelease(t *testing.T) {
	accommodations := newMockAccommodationRepo()
	guests := newMockGuestRepo()
	svc := NewAccommodationService(accommodations, guests)
	ctx := context.Background()
	activeEvent := &domain.Event{ID: 4, CreatedBy: 1}

	accommodation := seedAccommodation(t, accommodations, 4, 2)
	guest := seedGuest(t, guests, 4, "Asha", "Mehta")

	allocation, err := svc.Allocate(ctx, activeEvent, accommodation.ID, &dto.AllocateRoomRequest{GuestID: guest.ID})
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	stored, _ := accommodations.GetByID(ctx, accommodation.ID)
	if stored.AllocatedRooms != 1 {
		t.Errorf("expected 1 allocated room, got %d", stored.AllocatedRooms)
	}

	if err := svc.Deallocate(ctx, activeEvent, allocation.ID); err != nil {
		t.Fatalf("Deallocate failed: %v", err)
	}
	stored, _ = accommodations.GetByID(ctx, accommodation.ID)
	if stored.AllocatedRooms != 0 {
		t.Errorf("expected 0 allocated rooms after release, got %d", stored.AllocatedRooms)
	}
}

func TestAccommodationService_AllocateWhenFull(t *testing.T) {
	accommodations := newMockAccommodationRepo()
	guests := newMockGuestRepo()
	svc := NewAccommodationService(accommodations, guests)
	ctx := context.Background()
	activeEvent := &domain.Event{ID: 4, CreatedBy: 1}

	accommodation := seedAccommodation(t, accommodations, 4, 1)
	first := seedGuest(t, guests, 4, "Asha", "Mehta")
	second := seedGuest(t, guests, 4, "Rohan", "Mehta")

	if _, err := svc.Allocate(ctx, activeEvent, accommodation.ID, &dto.AllocateRoomRequest{GuestID: first.ID}); err != nil {
		t.Fatalf("first Allocate failed: %v", err)
	}

	_, err := svc.Allocate(ctx, activeEvent, accommodation.ID, &dto.AllocateRoomRequest{GuestID: second.ID})
	if !errors.Is(err, domain.ErrAllocationNoRoomsLeft) {
		t.Errorf("expected ErrAllocationNoRoomsLeft, got %v", err)
	}
}

func TestAccommodationService_CrossEventAllocationRejected(t *testing.T) {
	accommodations := newMockAccommodationRepo()
	guests := newMockGuestRepo()
	svc := NewAccommodationService(accommodations, guests)
	ctx := context.Background()
	activeEvent := &domain.Event{ID: 4, CreatedBy: 1}

	accommodation := seedAccommodation(t, accommodations, 4, 2)
	foreignGuest := seedGuest(t, guests, 7, "Vikram", "Singh")

	_, err := svc.Allocate(ctx, activeEvent, accommodation.ID, &dto.AllocateRoomRequest{GuestID: foreignGuest.ID})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// No allocation persisted, no room consumed
	allocations, _ := accommodations.ListAllocationsByAccommodation(ctx, accommodation.ID)
	if len(allocations) != 0 {
		t.Errorf("expected no allocations, got %d", len(allocations))
	}
	stored, _ := accommodations.GetByID(ctx, accommodation.ID)
	if stored.AllocatedRooms != 0 {
		t.Errorf("expected 0 allocated rooms, got %d", stored.AllocatedRooms)
	}
}

func TestAccommodationService_ShrinkBelowAllocatedRejected(t *testing.T) {
	accommodations := newMockAccommodationRepo()
	guests := newMockGuestRepo()
	svc := NewAccommodationService(accommodations, guests)
	ctx := context.Background()
	activeEvent := &domain.Event{ID: 4, CreatedBy: 1}

	accommodation := seedAccommodation(t, accommodations, 4, 2)
	guest := seedGuest(t, guests, 4, "Asha", "Mehta")
	if _, err := svc.Allocate(ctx, activeEvent, accommodation.ID, &dto.AllocateRoomRequest{GuestID: guest.ID}); err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}

	zero := 0
	_, err := svc.Update(ctx, activeEvent, accommodation.ID, &dto.UpdateAccommodationRequest{TotalRooms: &zero})
	if !errors.Is(err, domain.ErrAllocationNoRoomsLeft) {
		t.Errorf("expected ErrAllocationNoRoomsLeft, got %v", err)
	}
}
