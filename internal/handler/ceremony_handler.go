package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/pkg/response"
	"github.com/hobbist2102/rsvp-app/pkg/telemetry"
)

// CeremonyHandler handles ceremony HTTP requests
type CeremonyHandler struct {
	ceremonyService service.CeremonyService
	eventCtx        service.EventContextService
}

// NewCeremonyHandler creates a new CeremonyHandler
func NewCeremonyHandler(ceremonyService service.CeremonyService, eventCtx service.EventContextService) *CeremonyHandler {
	return &CeremonyHandler{
		ceremonyService: ceremonyService,
		eventCtx:        eventCtx,
	}
}

// Create handles adding a ceremony to the active event
// POST /api/v1/ceremonies
func (h *CeremonyHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "ceremony.create")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	var req dto.CreateCeremonyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	ceremony, err := h.ceremonyService.Create(ctx, event, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(ceremony))
}

// List handles listing the active event's ceremonies
// GET /api/v1/ceremonies
func (h *CeremonyHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "ceremony.list")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	ceremonies, err := h.ceremonyService.List(ctx, event)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(ceremonies))
}

// Get handles retrieving a single ceremony
// GET /api/v1/ceremonies/:id
func (h *CeremonyHandler) Get(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "ceremony.get")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.ceremonyService.OwnerEventID)
	if !ok {
		return
	}

	ceremony, err := h.ceremonyService.Get(ctx, event, id)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(ceremony))
}

// Update handles ceremony update
// PUT /api/v1/ceremonies/:id
func (h *CeremonyHandler) Update(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "ceremony.update")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.ceremonyService.OwnerEventID)
	if !ok {
		return
	}

	var req dto.UpdateCeremonyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	ceremony, err := h.ceremonyService.Update(ctx, event, id, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(ceremony))
}

// Delete handles ceremony removal
// DELETE /api/v1/ceremonies/:id
func (h *CeremonyHandler) Delete(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "ceremony.delete")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.ceremonyService.OwnerEventID)
	if !ok {
		return
	}

	if err := h.ceremonyService.Delete(ctx, event, id); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// SetAttendance handles recording whether a guest attends a ceremony
// POST /api/v1/ceremonies/:id/attendance
func (h *CeremonyHandler) SetAttendance(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "ceremony.set_attendance")
	defer span.End()

	ceremonyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, ceremonyID, h.ceremonyService.OwnerEventID)
	if !ok {
		return
	}

	var req dto.SetAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	attendance, err := h.ceremonyService.SetAttendance(ctx, event, ceremonyID, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(attendance))
}

// ListAttendance handles listing a ceremony's attendance records
// GET /api/v1/ceremonies/:id/attendance
func (h *CeremonyHandler) ListAttendance(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "ceremony.list_attendance")
	defer span.End()

	ceremonyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, ceremonyID, h.ceremonyService.OwnerEventID)
	if !ok {
		return
	}

	records, err := h.ceremonyService.ListAttendance(ctx, event, ceremonyID)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(records))
}
