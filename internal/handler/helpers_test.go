package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/pkg/middleware"
	"github.com/hobbist2102/rsvp-app/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testContext builds a gin context with an authenticated principal attached,
// the way the JWT middleware would leave it
func testContext(t *testing.T, method, target string, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req

	c.Set(middleware.ContextKeyUserID, int64(1))
	c.Set(middleware.ContextKeyEmail, "couple@example.com")
	c.Set(middleware.ContextKeyRole, string(domain.RoleCouple))
	c.Set(middleware.ContextKeySessionID, "sess-1")
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) *response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return &resp
}

func TestPrincipalFrom(t *testing.T) {
	c, _ := testContext(t, http.MethodGet, "/api/v1/guests", "")

	principal, ok := principalFrom(c)
	if !ok {
		t.Fatal("expected principal")
	}
	if principal.UserID != 1 || principal.SessionID != "sess-1" {
		t.Errorf("unexpected principal %+v", principal)
	}
	if principal.Role != domain.RoleCouple {
		t.Errorf("role = %q, want couple", principal.Role)
	}
}

func TestPrincipalFrom_Unauthenticated(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/guests", nil)

	if _, ok := principalFrom(c); ok {
		t.Fatal("expected no principal without auth context")
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name   string
		param  string
		wantID int64
		wantOK bool
	}{
		{"valid", "42", 42, true},
		{"zero", "0", 0, false},
		{"negative", "-3", 0, false},
		{"garbage", "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(t, http.MethodGet, "/x", "")
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			id, ok := pathID(c, "id")
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if id != tt.wantID {
				t.Errorf("id = %d, want %d", id, tt.wantID)
			}
			if !tt.wantOK && w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"event context required", service.ErrEventContextRequired, http.StatusBadRequest, response.ErrCodeEventContextRequired},
		{"no events visible", service.ErrNoEventsVisible, http.StatusNotFound, response.ErrCodeNoEventsFound},
		{"not found", service.ErrNotFound, http.StatusNotFound, response.ErrCodeNotFound},
		{"session write", service.ErrSessionWrite, http.StatusInternalServerError, response.ErrCodeSessionWriteFailed},
		{"dispatch failed", service.ErrDispatchFailed, http.StatusInternalServerError, response.ErrCodeDispatchFailed},
		{"no reachable contact", service.ErrNoReachableContact, http.StatusBadRequest, response.ErrCodeBadRequest},
		{"duplicate dedup key", service.ErrDuplicateDedupKey, http.StatusConflict, response.ErrCodeDuplicateEntry},
		{"capacity exceeded", domain.ErrAllocationNoRoomsLeft, http.StatusConflict, response.ErrCodeCapacityExceeded},
		{"domain validation", domain.ErrEventTitleRequired, http.StatusBadRequest, response.ErrCodeBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, response.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(t, http.MethodGet, "/x", "")

			respondServiceError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			resp := decodeResponse(t, w)
			if resp.Success {
				t.Error("expected error envelope")
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
		})
	}
}
