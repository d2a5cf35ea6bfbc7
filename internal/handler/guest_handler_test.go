package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
)

func resolvingEventCtx(event *domain.Event) *mockEventContextService {
	return &mockEventContextService{
		resolveFn: func(ctx context.Context, principal domain.Principal, hint service.ResolveHint) (*domain.Event, error) {
			return event, nil
		},
	}
}

func TestGuestHandler_Create(t *testing.T) {
	event := testEvent(5)
	svc := &mockGuestService{
		createFn: func(ctx context.Context, ev *domain.Event, req *dto.CreateGuestRequest) (*domain.Guest, error) {
			if ev.ID != 5 {
				t.Errorf("service received event %d, want 5", ev.ID)
			}
			return &domain.Guest{ID: 1, EventID: ev.ID, FirstName: req.FirstName, LastName: req.LastName}, nil
		},
	}
	h := NewGuestHandler(svc, resolvingEventCtx(event))

	c, w := testContext(t, http.MethodPost, "/api/v1/guests", `{"first_name":"Asha","last_name":"Mehta"}`)
	h.Create(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
}

func TestGuestHandler_Create_MissingName(t *testing.T) {
	h := NewGuestHandler(&mockGuestService{}, resolvingEventCtx(testEvent(5)))

	c, w := testContext(t, http.MethodPost, "/api/v1/guests", `{"last_name":"Mehta"}`)
	h.Create(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGuestHandler_QueryParamReachesResolver(t *testing.T) {
	eventCtx := resolvingEventCtx(testEvent(5))
	svc := &mockGuestService{
		listFn: func(ctx context.Context, ev *domain.Event, query *dto.ListGuestsQuery) ([]*domain.Guest, error) {
			return nil, nil
		},
	}
	h := NewGuestHandler(svc, eventCtx)

	c, w := testContext(t, http.MethodGet, "/api/v1/guests?event_id=12", "")
	h.List(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if eventCtx.lastHint.EventIDParam != "12" {
		t.Errorf("hint param = %q, want 12", eventCtx.lastHint.EventIDParam)
	}
}

func TestGuestHandler_NoEventContext(t *testing.T) {
	eventCtx := &mockEventContextService{
		resolveFn: func(ctx context.Context, principal domain.Principal, hint service.ResolveHint) (*domain.Event, error) {
			return nil, service.ErrEventContextRequired
		},
	}
	h := NewGuestHandler(&mockGuestService{}, eventCtx)

	c, w := testContext(t, http.MethodGet, "/api/v1/guests", "")
	h.List(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeResponse(t, w)
	if resp.Error == nil || resp.Error.Code != "EVENT_CONTEXT_REQUIRED" {
		t.Errorf("error = %+v, want EVENT_CONTEXT_REQUIRED", resp.Error)
	}
}

func TestGuestHandler_Unauthenticated(t *testing.T) {
	h := NewGuestHandler(&mockGuestService{}, resolvingEventCtx(testEvent(5)))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/guests", nil)
	h.List(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestGuestHandler_Stats(t *testing.T) {
	svc := &mockGuestService{
		statsFn: func(ctx context.Context, ev *domain.Event) (*dto.GuestStatsResponse, error) {
			return &dto.GuestStatsResponse{Total: 3, Pending: 1, Confirmed: 2}, nil
		},
	}
	h := NewGuestHandler(svc, resolvingEventCtx(testEvent(5)))

	c, w := testContext(t, http.MethodGet, "/api/v1/guests/stats", "")
	h.Stats(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestGuestHandler_GetResolvesUnderResourceEvent(t *testing.T) {
	// The guest lives in event 1 while the session snapshot points at
	// event 2. The guest's own event wins, so the request succeeds instead
	// of tripping the scope check against the session's event.
	eventCtx := &mockEventContextService{
		resolveFn: func(ctx context.Context, principal domain.Principal, hint service.ResolveHint) (*domain.Event, error) {
			if hint.ResourceEventID > 0 {
				return testEvent(hint.ResourceEventID), nil
			}
			return testEvent(2), nil
		},
	}
	svc := &mockGuestService{
		ownerEventIDFn: func(ctx context.Context, id int64) (int64, error) {
			return 1, nil
		},
		getFn: func(ctx context.Context, ev *domain.Event, id int64) (*domain.Guest, error) {
			if ev.ID != 1 {
				t.Errorf("service received event %d, want the guest's event 1", ev.ID)
			}
			return &domain.Guest{ID: id, EventID: ev.ID, FirstName: "Asha"}, nil
		},
	}
	h := NewGuestHandler(svc, eventCtx)

	c, w := testContext(t, http.MethodGet, "/api/v1/guests/1", "")
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.Get(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if eventCtx.lastHint.ResourceEventID != 1 {
		t.Errorf("resolver hint event = %d, want the guest's event 1", eventCtx.lastHint.ResourceEventID)
	}
}

func TestGuestHandler_CrossEventGuest(t *testing.T) {
	// The guest exists under an event the caller may not act on. The denial
	// surfaces as the same not-found the caller would get for a missing id.
	eventCtx := &mockEventContextService{
		resolveFn: func(ctx context.Context, principal domain.Principal, hint service.ResolveHint) (*domain.Event, error) {
			return nil, service.ErrNotFound
		},
	}
	svc := &mockGuestService{
		ownerEventIDFn: func(ctx context.Context, id int64) (int64, error) {
			return 9, nil
		},
	}
	h := NewGuestHandler(svc, eventCtx)

	c, w := testContext(t, http.MethodGet, "/api/v1/guests/8", "")
	c.Params = gin.Params{{Key: "id", Value: "8"}}
	h.Get(c)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGuestHandler_ContactUnreachable(t *testing.T) {
	svc := &mockGuestService{
		ownerEventIDFn: func(ctx context.Context, id int64) (int64, error) {
			return 5, nil
		},
		contactFn: func(ctx context.Context, ev *domain.Event, id int64) (*dto.GuestContactResponse, error) {
			return nil, service.ErrNoReachableContact
		},
	}
	h := NewGuestHandler(svc, resolvingEventCtx(testEvent(5)))

	c, w := testContext(t, http.MethodGet, "/api/v1/guests/8/contact", "")
	c.Params = gin.Params{{Key: "id", Value: "8"}}
	h.Contact(c)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
