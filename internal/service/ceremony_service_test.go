package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
)

func seedCeremony(t *testing.T, repo *mockCeremonyRepo, eventID int64, name string) *domain.Ceremony {
	t.Helper()
	ceremony, err := domain.NewCeremony(eventID, name, time.Date(2026, 11, 21, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewCeremony failed: %v", err)
	}
	if err := repo.Create(context.Background(), ceremony); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return ceremony
}

func boolPtr(b bool) *bool { return &b }

func TestCeremonyService_CrossEventCeremonyIsNotFound(t *testing.T) {
	ceremonies := newMockCeremonyRepo()
	guests := newMockGuestRepo()
	svc := NewCeremonyService(ceremonies, guests)

	foreign := seedCeremony(t, ceremonies, 7, "Sangeet")
	activeEvent := &domain.Event{ID: 4, CreatedBy: 1}

	_, err := svc.Get(context.Background(), activeEvent, foreign.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCeremonyService_SetAttendance(t *testing.T) {
	ceremonies := newMockCeremonyRepo()
	guests := newMockGuestRepo()
	svc := NewCeremonyService(ceremonies, guests)
	ctx := context.Background()
	activeEvent := &domain.Event{ID: 4, CreatedBy: 1}

	ceremony := seedCeremony(t, ceremonies, 4, "Sangeet")
	guest := seedGuest(t, guests, 4, "Asha", "Mehta")

	attendance, err := svc.SetAttendance(ctx, activeEvent, ceremony.ID, &dto.SetAttendanceRequest{
		GuestID:   guest.ID,
		Attending: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("SetAttendance failed: %v", err)
	}
	if !attendance.Attending {
		t.Error("expected attending true")
	}

	// Flip the same pair; the record is replaced, not duplicated
	if _, err := svc.SetAttendance(ctx, activeEvent, ceremony.ID, &dto.SetAttendanceRequest{
		GuestID:   guest.ID,
		Attending: boolPtr(false),
	}); err != nil {
		t.Fatalf("second SetAttendance failed: %v", err)
	}

	records, err := svc.ListAttendance(ctx, activeEvent, ceremony.ID)
	if err != nil {
		t.Fatalf("ListAttendance failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 attendance record, got %d", len(records))
	}
	if records[0].Attending {
		t.Error("expected attendance flipped to false")
	}
}

func TestCeremonyService_CrossEventAttendanceRejected(t *testing.T) {
	ceremonies := newMockCeremonyRepo()
	guests := newMockGuestRepo()
	svc := NewCeremonyService(ceremonies, guests)
	ctx := context.Background()

	tests := []struct {
		name          string
		ceremonyEvent int64
		guestEvent    int64
		activeEvent   int64
	}{
		{"guest from another event", 4, 7, 4},
		{"ceremony from another event", 7, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ceremony := seedCeremony(t, ceremonies, tt.ceremonyEvent, "Sangeet")
			guest := seedGuest(t, guests, tt.guestEvent, "Asha", "Mehta")
			activeEvent := &domain.Event{ID: tt.activeEvent, CreatedBy: 1}

			_, err := svc.SetAttendance(ctx, activeEvent, ceremony.ID, &dto.SetAttendanceRequest{
				GuestID:   guest.ID,
				Attending: boolPtr(true),
			})
			if !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}

			// No relation record was persisted
			records, _ := ceremonies.ListAttendanceByGuest(ctx, guest.ID)
			if len(records) != 0 {
				t.Errorf("expected no attendance records, got %d", len(records))
			}
		})
	}
}
