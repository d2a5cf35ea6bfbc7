package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/internal/dto"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/pkg/response"
	"github.com/hobbist2102/rsvp-app/pkg/telemetry"
)

// MessageHandler handles message template and guest message HTTP requests
type MessageHandler struct {
	messageService service.MessageService
	eventCtx       service.EventContextService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService service.MessageService, eventCtx service.EventContextService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		eventCtx:       eventCtx,
	}
}

// CreateTemplate handles adding a message template to the active event
// POST /api/v1/templates
func (h *MessageHandler) CreateTemplate(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "message.create_template")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	var req dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	template, err := h.messageService.CreateTemplate(ctx, event, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(template))
}

// ListTemplates handles listing the active event's templates
// GET /api/v1/templates
func (h *MessageHandler) ListTemplates(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "message.list_templates")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	templates, err := h.messageService.ListTemplates(ctx, event)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(templates))
}

// GetTemplate handles retrieving a single template
// GET /api/v1/templates/:id
func (h *MessageHandler) GetTemplate(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "message.get_template")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.messageService.TemplateOwnerEventID)
	if !ok {
		return
	}

	template, err := h.messageService.GetTemplate(ctx, event, id)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(template))
}

// UpdateTemplate handles template update
// PUT /api/v1/templates/:id
func (h *MessageHandler) UpdateTemplate(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "message.update_template")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.messageService.TemplateOwnerEventID)
	if !ok {
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	template, err := h.messageService.UpdateTemplate(ctx, event, id, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(template))
}

// DeleteTemplate handles template removal
// DELETE /api/v1/templates/:id
func (h *MessageHandler) DeleteTemplate(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "message.delete_template")
	defer span.End()

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, id, h.messageService.TemplateOwnerEventID)
	if !ok {
		return
	}

	if err := h.messageService.DeleteTemplate(ctx, event, id); err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"deleted": true}))
}

// Send handles dispatching a message to a guest
// POST /api/v1/messages
func (h *MessageHandler) Send(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "message.send")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	message, err := h.messageService.Send(ctx, event, &req)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(message))
}

// List handles listing the active event's messages, newest first
// GET /api/v1/messages
func (h *MessageHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "message.list")
	defer span.End()

	event, _, ok := resolveEvent(c, h.eventCtx)
	if !ok {
		return
	}

	messages, err := h.messageService.ListMessages(ctx, event)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(messages))
}

// ListForGuest handles listing one guest's messages, newest first
// GET /api/v1/guests/:id/messages
func (h *MessageHandler) ListForGuest(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "message.list_for_guest")
	defer span.End()

	guestID, ok := pathID(c, "id")
	if !ok {
		return
	}
	event, _, ok := resolveEventForResource(c, h.eventCtx, guestID, h.messageService.GuestOwnerEventID)
	if !ok {
		return
	}

	messages, err := h.messageService.ListGuestMessages(ctx, event, guestID)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(messages))
}
