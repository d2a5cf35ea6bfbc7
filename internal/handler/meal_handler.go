package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/pkg/response"
	"github.com/hobbist2102/rsvp-app/pkg/telemetry"
)

// MealHandler handles meal option and meal selection HTTP requests
type MealHandler struct {
	mealService service.MealService
	eventCtx    service.EventContextService
}

// NewMealHandler creates a new MealHandler
func NewMealHandler(mealService service.MealService, eventCtx service.EventContextService) *MealHandler {
	return &MealHandler{
		mealService: mealService,
		eventCtx:    eventCtx,
	}
}

// CreateOption handles adding a dish to a ceremony
// POST /api/v1/ceremonies/:id/meals
func (h *MealHandler) CreateOption(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "meal.create_option")
	defer span.End()

	ceremonyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, ceremonyID, h.mealService.CeremonyOwnerEventID)
	if !ok {
		return
	}

	var req dto.CreateMealOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	option, err := h.mealService.CreateOption(ctx, event, ceremonyID, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(option))
}

// ListOptions handles listing a ceremony's dishes
// GET /api/v1/ceremonies/:id/meals
func (h *MealHandler) ListOptions(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "meal.list_options")
	defer span.End()

	ceremonyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, ceremonyID, h.mealService.CeremonyOwnerEventID)
	if !ok {
		return
	}

	options, err := h.mealService.ListOptions(ctx, event, ceremonyID)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(options))
}

// UpdateOption handles dish update
// PUT /api/v1/meals/:id
func (h *MealHandler) UpdateOption(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "meal.update_option")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.mealService.OptionOwnerEventID)
	if !ok {
		return
	}

	var req dto.UpdateMealOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	option, err := h.mealService.UpdateOption(ctx, event, id, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(option))
}

// DeleteOption handles dish removal
// DELETE /api/v1/meals/:id
func (h *MealHandler) DeleteOption(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "meal.delete_option")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.mealService.OptionOwnerEventID)
	if !ok {
		return
	}

	if err := h.mealService.DeleteOption(ctx, event, id); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// Select handles recording a guest's dish choice for a ceremony
// POST /api/v1/ceremonies/:id/meals/selections
func (h *MealHandler) Select(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "meal.select")
	defer span.End()

	ceremonyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, ceremonyID, h.mealService.CeremonyOwnerEventID)
	if !ok {
		return
	}

	var req dto.SelectMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	selection, err := h.mealService.Select(ctx, event, ceremonyID, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(selection))
}

// ListSelections handles listing a ceremony's meal selections
// GET /api/v1/ceremonies/:id/meals/selections
func (h *MealHandler) ListSelections(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "meal.list_selections")
	defer span.End()

	ceremonyID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, ceremonyID, h.mealService.CeremonyOwnerEventID)
	if !ok {
		return
	}

	selections, err := h.mealService.ListSelections(ctx, event, ceremonyID)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(selections))
}

// DeleteSelection handles removing a selection
// DELETE /api/v1/selections/:id
func (h *MealHandler) DeleteSelection(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "meal.delete_selection")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.mealService.SelectionOwnerEventID)
	if !ok {
		return
	}

	if err := h.mealService.DeleteSelection(ctx, event, id); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}
