package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hobbist2102/rsvp-app/pkg/middleware"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Health        *HealthHandler
	Event         *EventHandler
	Guest         *GuestHandler
	Ceremony      *CeremonyHandler
	Accommodation *AccommodationHandler
	Meal          *MealHandler
	Travel        *TravelHandler
	Message       *MessageHandler
}

// RegisterRoutes mounts all routes on the engine. Health endpoints are
// unauthenticated; everything under /api/v1 requires a valid JWT.
func RegisterRoutes(r *gin.Engine, h *Handlers, jwtCfg *middleware.JWTConfig) {
	r.GET("/health", h.Health.Live)
	r.GET("/ready", h.Health.Ready)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTMiddleware(jwtCfg))

	events := v1.Group("/events")
	{
		events.POST("", h.Event.Create)
		events.GET("", h.Event.List)
		events.GET("/current", h.Event.Current)
		events.POST("/current", h.Event.SetCurrent)
		events.DELETE("/current", h.Event.ClearCurrent)
		events.GET("/:id", h.Event.Get)
		events.PUT("/:id", h.Event.Update)
		events.DELETE("/:id", h.Event.Delete)
	}

	guests := v1.Group("/guests")
	{
		guests.POST("", h.Guest.Create)
		guests.GET("", h.Guest.List)
		guests.GET("/stats", h.Guest.Stats)
		guests.GET("/:id", h.Guest.Get)
		guests.PUT("/:id", h.Guest.Update)
		guests.DELETE("/:id", h.Guest.Delete)
		guests.GET("/:id/contact", h.Guest.Contact)
		guests.PUT("/:id/travel", h.Travel.Upsert)
		guests.GET("/:id/travel", h.Travel.Get)
		guests.DELETE("/:id/travel", h.Travel.Delete)
		guests.GET("/:id/messages", h.Message.ListForGuest)
	}

	ceremonies := v1.Group("/ceremonies")
	{
		ceremonies.POST("", h.Ceremony.Create)
		ceremonies.GET("", h.Ceremony.List)
		ceremonies.GET("/:id", h.Ceremony.Get)
		ceremonies.PUT("/:id", h.Ceremony.Update)
		ceremonies.DELETE("/:id", h.Ceremony.Delete)
		ceremonies.POST("/:id/attendance", h.Ceremony.SetAttendance)
		ceremonies.GET("/:id/attendance", h.Ceremony.ListAttendance)
		ceremonies.POST("/:id/meals", h.Meal.CreateOption)
		ceremonies.GET("/:id/meals", h.Meal.ListOptions)
		ceremonies.POST("/:id/meals/selections", h.Meal.Select)
		ceremonies.GET("/:id/meals/selections", h.Meal.ListSelections)
	}

	accommodations := v1.Group("/accommodations")
	{
		accommodations.POST("", h.Accommodation.Create)
		accommodations.GET("", h.Accommodation.List)
		accommodations.GET("/:id", h.Accommodation.Get)
		accommodations.PUT("/:id", h.Accommodation.Update)
		accommodations.DELETE("/:id", h.Accommodation.Delete)
		accommodations.POST("/:id/allocations", h.Accommodation.Allocate)
		accommodations.GET("/:id/allocations", h.Accommodation.ListAllocations)
	}

	allocations := v1.Group("/allocations")
	{
		allocations.PUT("/:id", h.Accommodation.UpdateAllocation)
		allocations.DELETE("/:id", h.Accommodation.Deallocate)
	}

	meals := v1.Group("/meals")
	{
		meals.PUT("/:id", h.Meal.UpdateOption)
		meals.DELETE("/:id", h.Meal.DeleteOption)
	}

	v1.DELETE("/selections/:id", h.Meal.DeleteSelection)

	v1.GET("/travel", h.Travel.List)

	templates := v1.Group("/templates")
	{
		templates.POST("", h.Message.CreateTemplate)
		templates.GET("", h.Message.ListTemplates)
		templates.GET("/:id", h.Message.GetTemplate)
		templates.PUT("/:id", h.Message.UpdateTemplate)
		templates.DELETE("/:id", h.Message.DeleteTemplate)
	}

	messages := v1.Group("/messages")
	{
		messages.POST("", h.Message.Send)
		messages.GET("", h.Message.List)
	}
}
