package domain

import (
	"testing"
	"time"
)

func TestNewEvent(t *testing.T) {
	start := time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 11, 22, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		title       string
		coupleNames string
		startDate   time.Time
		endDate     time.Time
		createdBy   int64
		wantErr     error
	}{
		{"valid event", "Mehta Wedding", "Asha & Rohan", start, end, 1, nil},
		{"missing title", "", "Asha & Rohan", start, end, 1, ErrEventTitleRequired},
		{"missing couple", "Mehta Wedding", "", start, end, 1, ErrEventCoupleRequired},
		{"missing dates", "Mehta Wedding", "Asha & Rohan", time.Time{}, end, 1, ErrEventDatesRequired},
		{"end before start", "Mehta Wedding", "Asha & Rohan", end, start, 1, ErrEventDatesOutOfOrder},
		{"missing creator", "Mehta Wedding", "Asha & Rohan", start, end, 0, ErrEventCreatorRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEvent(tt.title, tt.coupleNames, tt.startDate, tt.endDate, "Udaipur", tt.createdBy)
			if err != tt.wantErr {
				t.Fatalf("NewEvent() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if e.CreatedBy != tt.createdBy {
				t.Errorf("CreatedBy = %d, want %d", e.CreatedBy, tt.createdBy)
			}
		})
	}
}
