package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/pkg/response"
	"github.com/hobbist2102/rsvp-app/pkg/telemetry"
)

// AccommodationHandler handles accommodation and room allocation HTTP requests
type AccommodationHandler struct {
	accommodationService service.AccommodationService
	eventCtx             service.EventContextService
}

// NewAccommodationHandler creates a new AccommodationHandler
func NewAccommodationHandler(accommodationService service.AccommodationService, eventCtx service.EventContextService) *AccommodationHandler {
	return &AccommodationHandler{
		accommodationService: accommodationService,
		eventCtx:             eventCtx,
	}
}

// Create handles adding a room block to the active event
// POST /api/v1/accommodations
func (h *AccommodationHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "accommodation.create")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	var req dto.CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	accommodation, err := h.accommodationService.Create(ctx, event, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(accommodation))
}

// List handles listing the active event's room blocks
// GET /api/v1/accommodations
func (h *AccommodationHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "accommodation.list")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	accommodations, err := h.accommodationService.List(ctx, event)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(accommodations))
}

// Get handles retrieving a single room block
// GET /api/v1/accommodations/:id
func (h *AccommodationHandler) Get(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "accommodation.get")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.accommodationService.OwnerEventID)
	if !ok {
		return
	}

	accommodation, err := h.accommodationService.Get(ctx, event, id)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(accommodation))
}

// Update handles room block update
// PUT /api/v1/accommodations/:id
func (h *AccommodationHandler) Update(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "accommodation.update")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.accommodationService.OwnerEventID)
	if !ok {
		return
	}

	var req dto.UpdateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	accommodation, err := h.accommodationService.Update(ctx, event, id, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(accommodation))
}

// Delete handles room block removal
// DELETE /api/v1/accommodations/:id
func (h *AccommodationHandler) Delete(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "accommodation.delete")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.accommodationService.OwnerEventID)
	if !ok {
		return
	}

	if err := h.accommodationService.Delete(ctx, event, id); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// Allocate handles assigning a guest a room in a room block
// POST /api/v1/accommodations/:id/allocations
func (h *AccommodationHandler) Allocate(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "accommodation.allocate")
	defer span.End()

	accommodationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, accommodationID, h.accommodationService.OwnerEventID)
	if !ok {
		return
	}

	var req dto.AllocateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	allocation, err := h.accommodationService.Allocate(ctx, event, accommodationID, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(allocation))
}

// ListAllocations handles listing a room block's allocations
// GET /api/v1/accommodations/:id/allocations
func (h *AccommodationHandler) ListAllocations(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "accommodation.list_allocations")
	defer span.End()

	accommodationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, accommodationID, h.accommodationService.OwnerEventID)
	if !ok {
		return
	}

	allocations, err := h.accommodationService.ListAllocations(ctx, event, accommodationID)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(allocations))
}

// UpdateAllocation handles updating an allocation's stay details
// PUT /api/v1/allocations/:id
func (h *AccommodationHandler) UpdateAllocation(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "accommodation.update_allocation")
	defer span.End()

	allocationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, allocationID, h.accommodationService.AllocationOwnerEventID)
	if !ok {
		return
	}

	var req dto.UpdateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	allocation, err := h.accommodationService.UpdateAllocation(ctx, event, allocationID, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(allocation))
}

// Deallocate handles releasing a guest's room
// DELETE /api/v1/allocations/:id
func (h *AccommodationHandler) Deallocate(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "accommodation.deallocate")
	defer span.End()

	allocationID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, allocationID, h.accommodationService.AllocationOwnerEventID)
	if !ok {
		return
	}

	if err := h.accommodationService.Deallocate(ctx, event, allocationID); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"released": true}))
}
