package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
)

func testEvent(id int64) *domain.Event {
	return &domain.Event{
		ID:          id,
		Title:       "Priya & Rohan",
		CoupleNames: "Priya & Rohan",
		StartDate:   time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 11, 22, 0, 0, 0, 0, time.UTC),
		CreatedBy:   1,
	}
}

func TestEventHandler_Current(t *testing.T) {
	eventCtx := &mockEventContextService{
		currentFn: func(ctx context.Context, principal domain.Principal) (*domain.Event, error) {
			return testEvent(7), nil
		},
	}
	h := NewEventHandler(&mockEventService{}, eventCtx)

	c, w := testContext(t, http.MethodGet, "/api/v1/events/current", "")
	h.Current(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeResponse(t, w)
	if !resp.Success {
		t.Error("expected success envelope")
	}
}

func TestEventHandler_Current_NoEvents(t *testing.T) {
	eventCtx := &mockEventContextService{
		currentFn: func(ctx context.Context, principal domain.Principal) (*domain.Event, error) {
			return nil, service.ErrNoEventsVisible
		},
	}
	h := NewEventHandler(&mockEventService{}, eventCtx)

	c, w := testContext(t, http.MethodGet, "/api/v1/events/current", "")
	h.Current(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestEventHandler_SetCurrent(t *testing.T) {
	var selected int64
	eventCtx := &mockEventContextService{
		setCurrentFn: func(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error) {
			selected = eventID
			return testEvent(eventID), nil
		},
	}
	h := NewEventHandler(&mockEventService{}, eventCtx)

	c, w := testContext(t, http.MethodPost, "/api/v1/events/current", `{"event_id": 9}`)
	h.SetCurrent(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if selected != 9 {
		t.Errorf("selected event = %d, want 9", selected)
	}
}

func TestEventHandler_SetCurrent_InvalidBody(t *testing.T) {
	h := NewEventHandler(&mockEventService{}, &mockEventContextService{})

	c, w := testContext(t, http.MethodPost, "/api/v1/events/current", `{"event_id": 0}`)
	h.SetCurrent(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestEventHandler_SetCurrent_SessionWriteFailure(t *testing.T) {
	eventCtx := &mockEventContextService{
		setCurrentFn: func(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error) {
			return nil, service.ErrSessionWrite
		},
	}
	h := NewEventHandler(&mockEventService{}, eventCtx)

	c, w := testContext(t, http.MethodPost, "/api/v1/events/current", `{"event_id": 9}`)
	h.SetCurrent(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestEventHandler_Create(t *testing.T) {
	svc := &mockEventService{
		createFn: func(ctx context.Context, principal domain.Principal, req *dto.CreateEventRequest) (*domain.Event, error) {
			return testEvent(1), nil
		},
	}
	h := NewEventHandler(svc, &mockEventContextService{})

	body := `{"title":"Priya & Rohan","couple_names":"Priya & Rohan","start_date":"2026-11-20T00:00:00Z","end_date":"2026-11-22T00:00:00Z","location":"Udaipur"}`
	c, w := testContext(t, http.MethodPost, "/api/v1/events", body)
	h.Create(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
}

func TestEventHandler_Create_DatesOutOfOrder(t *testing.T) {
	h := NewEventHandler(&mockEventService{}, &mockEventContextService{})

	body := `{"title":"Priya & Rohan","couple_names":"Priya & Rohan","start_date":"2026-11-22T00:00:00Z","end_date":"2026-11-20T00:00:00Z","location":"Udaipur"}`
	c, w := testContext(t, http.MethodPost, "/api/v1/events", body)
	h.Create(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestEventHandler_Get_DeniedLooksLikeMissing(t *testing.T) {
	svc := &mockEventService{
		getFn: func(ctx context.Context, principal domain.Principal, id int64) (*domain.Event, error) {
			return nil, service.ErrNotFound
		},
	}
	h := NewEventHandler(svc, &mockEventContextService{})

	c, w := testContext(t, http.MethodGet, "/api/v1/events/3", "")
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	h.Get(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Error == nil || resp.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want NOT_FOUND", resp.Error)
	}
}

func TestEventHandler_ClearCurrent(t *testing.T) {
	var cleared string
	eventCtx := &mockEventContextService{
		clearSessionFn: func(ctx context.Context, sessionID string) error {
			cleared = sessionID
			return nil
		},
	}
	h := NewEventHandler(&mockEventService{}, eventCtx)

	c, w := testContext(t, http.MethodDelete, "/api/v1/events/current", "")
	h.ClearCurrent(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if cleared != "sess-1" {
		t.Errorf("cleared session = %q, want sess-1", cleared)
	}
}
