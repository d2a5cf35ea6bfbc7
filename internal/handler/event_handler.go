package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/pkg/response"
	"github.com/hobbist2102/rsvp-app/pkg/telemetry"
)

// EventHandler handles wedding event HTTP requests
type EventHandler struct {
	eventService service.EventService
	eventCtx     service.EventContextService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService, eventCtx service.EventContextService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		eventCtx:     eventCtx,
	}
}

// Create handles event creation
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "event.create")
	defer span.End()

	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	event, err := h.eventService.Create(ctx, principal, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(event))
}

// List handles listing the events visible to the caller
// GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "event.list")
	defer span.End()

	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	events, err := h.eventService.List(ctx, principal)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(events))
}

// Get handles retrieving a single event
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "event.get")
	defer span.End()

	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.Get(ctx, principal, id)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(event))
}

// Update handles event update
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "event.update")
	defer span.End()

	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	event, err := h.eventService.Update(ctx, principal, id, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(event))
}

// Delete handles event deletion
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "event.delete")
	defer span.End()

	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.Delete(ctx, principal, id); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// Current handles retrieving the session's active event
// GET /api/v1/events/current
func (h *EventHandler) Current(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "event.current")
	defer span.End()

	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	event, err := h.eventCtx.Current(ctx, principal)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(event))
}

// SetCurrent handles selecting the session's active event
// POST /api/v1/events/current
func (h *EventHandler) SetCurrent(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "event.set_current")
	defer span.End()

	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	var req dto.SetCurrentEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	event, err := h.eventCtx.SetCurrent(ctx, principal, req.EventID)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(event))
}

// ClearCurrent handles dropping the session's active event selection
// DELETE /api/v1/events/current
func (h *EventHandler) ClearCurrent(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "event.clear_current")
	defer span.End()

	principal, ok := principalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	if err := h.eventCtx.ClearSession(ctx, principal.SessionID); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"cleared": true}))
}
