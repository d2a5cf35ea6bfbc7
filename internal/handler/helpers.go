package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/pkg/middleware"
	"github.com/hobbist2102/rsvp-app/pkg/response"
)

// principalFrom builds the request principal from the JWT middleware's
// context values
func principalFrom(c *gin.Context) (domain.Principal, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domain.Principal{}, false
	}
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return domain.Principal{}, false
	}
	email, _ := middleware.GetEmail(c)
	role, _ := middleware.GetRole(c)

	return domain.Principal{
		UserID:    userID,
		Email:     email,
		Role:      domain.Role(role),
		SessionID: sessionID,
	}, true
}

// resolveEvent runs event-context resolution for the request. The optional
// ?event_id query value participates per the resolution order; the session
// snapshot covers the common case.
func resolveEvent(c *gin.Context, eventCtx service.EventContextService) (*domain.Event, domain.Principal, bool) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return nil, domain.Principal{}, false
	}

	event, err := eventCtx.Resolve(c.Request.Context(), principal, service.ResolveHint{
		EventIDParam: c.Query("event_id"),
	})
	if err != nil {
		respondServiceError(c, err)
		return nil, domain.Principal{}, false
	}
	return event, principal, true
}

// resolveEventForResource runs event-context resolution for a request that
// targets an existing resource by id. The resource's own event is
// authoritative, so the request lands on the right event even when the
// session snapshot or a query value points elsewhere. ownerEventID is the
// service lookup for the resource's owning event.
func resolveEventForResource(c *gin.Context, eventCtx service.EventContextService, id int64, ownerEventID func(ctx context.Context, id int64) (int64, error)) (*domain.Event, domain.Principal, bool) {
	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return nil, domain.Principal{}, false
	}

	resourceEventID, err := ownerEventID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return nil, domain.Principal{}, false
	}

	event, err := eventCtx.Resolve(c.Request.Context(), principal, service.ResolveHint{
		ResourceEventID: resourceEventID,
		EventIDParam:    c.Query("event_id"),
	})
	if err != nil {
		respondServiceError(c, err)
		return nil, domain.Principal{}, false
	}
	return event, principal, true
}

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid "+name))
		return 0, false
	}
	return id, true
}

// respondServiceError maps service sentinels onto the response envelope
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventContextRequired):
		c.JSON(http.StatusBadRequest, response.EventContextRequired())
	case errors.Is(err, service.ErrNoEventsVisible):
		c.JSON(http.StatusNotFound, response.Error(response.ErrCodeNoEventsFound, "No events found"))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.NotFound("Not found"))
	case errors.Is(err, service.ErrSessionWrite):
		c.JSON(http.StatusInternalServerError, response.Error(response.ErrCodeSessionWriteFailed, "Session could not be updated"))
	case errors.Is(err, service.ErrDispatchFailed):
		c.JSON(http.StatusInternalServerError, response.Error(response.ErrCodeDispatchFailed, "Message dispatch failed"))
	case errors.Is(err, service.ErrNoReachableContact):
		c.JSON(http.StatusBadRequest, response.BadRequest("Guest has no reachable contact"))
	case errors.Is(err, service.ErrDuplicateDedupKey):
		c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateEntry, "Dedup key already used for another guest"))
	case errors.Is(err, domain.ErrAllocationNoRoomsLeft):
		c.JSON(http.StatusConflict, response.Error(response.ErrCodeCapacityExceeded, "No rooms left to allocate"))
	case isDomainValidation(err):
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
	}
}

// isDomainValidation reports whether the error is a client-input problem
// raised by a domain constructor
func isDomainValidation(err error) bool {
	for _, target := range []error{
		domain.ErrEventTitleRequired,
		domain.ErrEventCoupleRequired,
		domain.ErrEventDatesRequired,
		domain.ErrEventDatesOutOfOrder,
		domain.ErrEventCreatorRequired,
		domain.ErrGuestNameRequired,
		domain.ErrGuestEventRequired,
		domain.ErrCeremonyNameRequired,
		domain.ErrCeremonyEventRequired,
		domain.ErrCeremonyDateRequired,
		domain.ErrAccommodationNameRequired,
		domain.ErrAccommodationEventRequired,
		domain.ErrAccommodationNoCapacity,
		domain.ErrMealNameRequired,
		domain.ErrMealCeremonyRequired,
		domain.ErrTemplateNameRequired,
		domain.ErrTemplateBodyRequired,
		domain.ErrInvalidChannel,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
