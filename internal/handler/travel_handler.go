package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/pkg/response"
	"github.com/hobbist2102/rsvp-app/pkg/telemetry"
)

// TravelHandler handles guest travel info HTTP requests
type TravelHandler struct {
	travelService service.TravelService
	eventCtx      service.EventContextService
}

// NewTravelHandler creates a new TravelHandler
func NewTravelHandler(travelService service.TravelService, eventCtx service.EventContextService) *TravelHandler {
	return &TravelHandler{
		travelService: travelService,
		eventCtx:      eventCtx,
	}
}

// Upsert handles recording or replacing a guest's travel info
// PUT /api/v1/guests/:id/travel
func (h *TravelHandler) Upsert(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "travel.upsert")
	defer span.End()

	guestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, guestID, h.travelService.GuestOwnerEventID)
	if !ok {
		return
	}

	var req dto.UpsertTravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	info, err := h.travelService.Upsert(ctx, event, guestID, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(info))
}

// Get handles retrieving a guest's travel info
// GET /api/v1/guests/:id/travel
func (h *TravelHandler) Get(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "travel.get")
	defer span.End()

	guestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, guestID, h.travelService.GuestOwnerEventID)
	if !ok {
		return
	}

	info, err := h.travelService.Get(ctx, event, guestID)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(info))
}

// List handles listing travel info across the active event's guests
// GET /api/v1/travel
func (h *TravelHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "travel.list")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	infos, err := h.travelService.List(ctx, event)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(infos))
}

// Delete handles removing a guest's travel info
// DELETE /api/v1/guests/:id/travel
func (h *TravelHandler) Delete(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "travel.delete")
	defer span.End()

	guestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, guestID, h.travelService.GuestOwnerEventID)
	if !ok {
		return
	}

	if err := h.travelService.Delete(ctx, event, guestID); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}
