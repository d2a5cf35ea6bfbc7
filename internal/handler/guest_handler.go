package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/pkg/response"
	"github.com/hobbist2102/rsvp-app/pkg/telemetry"
)

// GuestHandler handles guest HTTP requests
type GuestHandler struct {
	guestService service.GuestService
	eventCtx     service.EventContextService
}

// NewGuestHandler creates a new GuestHandler
func NewGuestHandler(guestService service.GuestService, eventCtx service.EventContextService) *GuestHandler {
	return &GuestHandler{
		guestService: guestService,
		eventCtx:     eventCtx,
	}
}

// Create handles adding a guest to the active event
// POST /api/v1/guests
func (h *GuestHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "guest.create")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	guest, err := h.guestService.Create(ctx, event, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(guest))
}

// List handles listing the active event's guests
// GET /api/v1/guests
func (h *GuestHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "guest.list")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	var query dto.ListGuestsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	guests, err := h.guestService.List(ctx, event, &query)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(guests))
}

// Stats handles the active event's RSVP summary
// GET /api/v1/guests/stats
func (h *GuestHandler) Stats(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "guest.stats")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	stats, err := h.guestService.Stats(ctx, event)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(stats))
}

// Get handles retrieving a single guest
// GET /api/v1/guests/:id
func (h *GuestHandler) Get(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "guest.get")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.guestService.OwnerEventID)
	if !ok {
		return
	}

	guest, err := h.guestService.Get(ctx, event, id)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(guest))
}

// Update handles guest update
// PUT /api/v1/guests/:id
func (h *GuestHandler) Update(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "guest.update")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.guestService.OwnerEventID)
	if !ok {
		return
	}

	var req dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	guest, err := h.guestService.Update(ctx, event, id, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(guest))
}

// Delete handles guest removal
// DELETE /api/v1/guests/:id
func (h *GuestHandler) Delete(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "guest.delete")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.guestService.OwnerEventID)
	if !ok {
		return
	}

	if err := h.guestService.Delete(ctx, event, id); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// Contact handles resolving where a guest's messages should go
// GET /api/v1/guests/:id/contact
func (h *GuestHandler) Contact(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "guest.contact")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.guestService.OwnerEventID)
	if !ok {
		return
	}

	contact, err := h.guestService.Contact(ctx, event, id)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(contact))
}
