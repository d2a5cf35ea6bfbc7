package di

import (
	"github.com/hobbist2102/rsvp-app/internal/handler"
	"github.com/hobbist2102/rsvp-app/internal/messaging"
	"github.com/hobbist2102/rsvp-app/internal/repository"
	"github.com/hobbist2102/rsvp-app/internal/service"
	"github.com/hobbist2102/rsvp-app/internal/session"
	"github.com/hobbist2102/rsvp-app/pkg/database"
	"github.com/hobbist2102/rsvp-app/pkg/redis"
)

// Container holds all dependencies for the RSVP service
type Container struct {
	// Infrastructure
	DB        *database.PostgresDB
	Cache     *redis.Client
	Sessions  session.Store
	Publisher messaging.Publisher

	// Repositories
	EventRepo         repository.EventRepository
	GuestRepo         repository.GuestRepository
	CeremonyRepo      repository.CeremonyRepository
	AccommodationRepo repository.AccommodationRepository
	MealRepo          repository.MealRepository
	TravelRepo        repository.TravelRepository
	MessageRepo       repository.MessageRepository
	UserRepo          repository.UserRepository

	// Services
	EventContext         service.EventContextService
	EventService         service.EventService
	GuestService         service.GuestService
	CeremonyService      service.CeremonyService
	AccommodationService service.AccommodationService
	MealService          service.MealService
	TravelService        service.TravelService
	MessageService       service.MessageService

	// Handlers
	HealthHandler        *handler.HealthHandler
	EventHandler         *handler.EventHandler
	GuestHandler         *handler.GuestHandler
	CeremonyHandler      *handler.CeremonyHandler
	AccommodationHandler *handler.AccommodationHandler
	MealHandler          *handler.MealHandler
	TravelHandler        *handler.TravelHandler
	MessageHandler       *handler.MessageHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB        *database.PostgresDB
	Cache     *redis.Client
	Sessions  session.Store
	Publisher messaging.Publisher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:        cfg.DB,
		Cache:     cfg.Cache,
		Sessions:  cfg.Sessions,
		Publisher: cfg.Publisher,
	}

	// Initialize repositories
	pool := c.DB.Pool
	c.EventRepo = repository.NewPostgresEventRepository(pool)
	c.GuestRepo = repository.NewPostgresGuestRepository(pool)
	c.CeremonyRepo = repository.NewPostgresCeremonyRepository(pool)
	c.AccommodationRepo = repository.NewPostgresAccommodationRepository(pool)
	c.MealRepo = repository.NewPostgresMealRepository(pool)
	c.TravelRepo = repository.NewPostgresTravelRepository(pool)
	c.MessageRepo = repository.NewPostgresMessageRepository(pool)
	c.UserRepo = repository.NewPostgresUserRepository(pool)

	// Initialize services
	c.EventContext = service.NewEventContextService(c.EventRepo, c.Sessions)
	c.EventService = service.NewEventService(c.EventRepo, c.EventContext)
	c.GuestService = service.NewGuestService(c.GuestRepo)
	c.CeremonyService = service.NewCeremonyService(c.CeremonyRepo, c.GuestRepo)
	c.AccommodationService = service.NewAccommodationService(c.AccommodationRepo, c.GuestRepo)
	c.MealService = service.NewMealService(c.MealRepo, c.CeremonyRepo, c.GuestRepo)
	c.TravelService = service.NewTravelService(c.TravelRepo, c.GuestRepo)
	c.MessageService = service.NewMessageService(c.MessageRepo, c.GuestRepo, c.Publisher)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Cache)
	c.EventHandler = handler.NewEventHandler(c.EventService, c.EventContext)
	c.GuestHandler = handler.NewGuestHandler(c.GuestService, c.EventContext)
	c.CeremonyHandler = handler.NewCeremonyHandler(c.CeremonyService, c.EventContext)
	c.AccommodationHandler = handler.NewAccommodationHandler(c.AccommodationService, c.EventContext)
	c.MealHandler = handler.NewMealHandler(c.MealService, c.EventContext)
	c.TravelHandler = handler.NewTravelHandler(c.TravelService, c.EventContext)
	c.MessageHandler = handler.NewMessageHandler(c.MessageService, c.EventContext)

	return c
}
