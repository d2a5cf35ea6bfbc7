package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/hobbist2102/rsvp-app/internal/domain"
	"github.com/hobbist2102/rsvp-app/internal/repository"
	"github.com/hobbist2102/rsvp-app/internal/session"
	"github.com/hobbist2102/rsvp-app/pkg/logger"
	"github.com/hobbist2102/rsvp-app/pkg/telemetry"
	"go.uber.org/zap"
)

// ResolveHint carries the per-request inputs to event resolution
type ResolveHint struct {
	// ResourceEventID is the owning event of an already-fetched resource.
	// When set it is authoritative and conflicting query or session values
	// are ignored.
	ResourceEventID int64
	// EventIDParam is the raw ?event_id query value, "" when absent
	EventIDParam string
}

// EventContextService resolves which event a request operates against and
// keeps the per-session event snapshot fresh
type EventContextService interface {
	// Resolve produces the active event for a request. Resolution order:
	// resource-owned event id, then a syntactically valid query parameter,
	// then the session snapshot. A query parameter beats the session so one
	// browser session can serve several open event tabs at once.
	Resolve(ctx context.Context, principal domain.Principal, hint ResolveHint) (*domain.Event, error)
	// SetCurrent selects the principal's active event and persists it to
	// the session before returning
	SetCurrent(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error)
	// Current returns the session's active event, falling back to the first
	// event visible to the principal when the session is empty or stale
	Current(ctx context.Context, principal domain.Principal) (*domain.Event, error)
	// Authorize fetches the event and checks the principal may act on it.
	// Absent and denied both come back as ErrNotFound.
	Authorize(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error)
	// ClearSession drops the session's event snapshot
	ClearSession(ctx context.Context, sessionID string) error
}

// eventContextService implements EventContextService
type eventContextService struct {
	eventRepo   repository.EventRepository
	sessions    session.Store
	resolutions *telemetry.Counter
	denials     *telemetry.Counter
}

// NewEventContextService creates a new EventContextService
func NewEventContextService(eventRepo repository.EventRepository, sessions session.Store) EventContextService {
	resolutions, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "event_context_resolutions_total",
		Description: "Successful event context resolutions by source",
		Unit:        "1",
	})
	if err != nil {
		logger.Get().Warn("failed to create resolution counter", zap.Error(err))
	}
	denials, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "event_context_denials_total",
		Description: "Event lookups answered as not found",
		Unit:        "1",
	})
	if err != nil {
		logger.Get().Warn("failed to create denial counter", zap.Error(err))
	}

	return &eventContextService{
		eventRepo:   eventRepo,
		sessions:    sessions,
		resolutions: resolutions,
		denials:     denials,
	}
}

func (s *eventContextService) countResolution(ctx context.Context, source string) {
	if s.resolutions != nil {
		s.resolutions.Inc(ctx, telemetry.SourceAttr(source))
	}
}

func (s *eventContextService) countDenial(ctx context.Context) {
	if s.denials != nil {
		s.denials.Inc(ctx)
	}
}

// Resolve produces the active event for a request
func (s *eventContextService) Resolve(ctx context.Context, principal domain.Principal, hint ResolveHint) (*domain.Event, error) {
	if hint.ResourceEventID > 0 {
		event, err := s.Authorize(ctx, principal, hint.ResourceEventID)
		if err != nil {
			return nil, err
		}
		if err := s.refresh(ctx, principal.SessionID, event); err != nil {
			return nil, err
		}
		s.countResolution(ctx, "resource")
		return event, nil
	}

	if hint.EventIDParam != "" {
		// A malformed or non-positive value is not a usable override and
		// resolution falls through to the session snapshot
		if id, err := strconv.ParseInt(hint.EventIDParam, 10, 64); err == nil && id > 0 {
			event, err := s.Authorize(ctx, principal, id)
			if err != nil {
				return nil, err
			}
			if err := s.refresh(ctx, principal.SessionID, event); err != nil {
				return nil, err
			}
			s.countResolution(ctx, "query")
			return event, nil
		}
	}

	snap, err := s.sessions.Get(ctx, principal.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrEventContextRequired
		}
		return nil, fmt.Errorf("session read: %w", err)
	}

	event, err := s.validateSnapshot(ctx, principal, snap)
	if err != nil {
		return nil, err
	}
	s.countResolution(ctx, "session")
	return event, nil
}

// SetCurrent selects the principal's active event
func (s *eventContextService) SetCurrent(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error) {
	event, err := s.Authorize(ctx, principal, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.refresh(ctx, principal.SessionID, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Current returns the session's active event
func (s *eventContextService) Current(ctx context.Context, principal domain.Principal) (*domain.Event, error) {
	snap, err := s.sessions.Get(ctx, principal.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return s.fallback(ctx, principal)
		}
		return nil, fmt.Errorf("session read: %w", err)
	}

	return s.validateSnapshot(ctx, principal, snap)
}

// validateSnapshot re-checks a snapshot against the source of truth. The
// snapshot is a cache and never trusted as authoritative: a deleted or
// no-longer-accessible event drops the snapshot and falls back to the first
// event the principal can see.
func (s *eventContextService) validateSnapshot(ctx context.Context, principal domain.Principal, snap *session.Snapshot) (*domain.Event, error) {
	event, err := s.Authorize(ctx, principal, snap.EventID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if delErr := s.sessions.Delete(ctx, principal.SessionID); delErr != nil {
				logger.WithContext(ctx).Warn("failed to drop stale session snapshot",
					zap.String("session_id", principal.SessionID),
					zap.Error(delErr))
			}
			return s.fallback(ctx, principal)
		}
		return nil, err
	}

	if err := s.refresh(ctx, principal.SessionID, event); err != nil {
		return nil, err
	}
	return event, nil
}

// fallback picks the first event visible to the principal
func (s *eventContextService) fallback(ctx context.Context, principal domain.Principal) (*domain.Event, error) {
	var (
		events []*domain.Event
		err    error
	)
	if principal.Role.BypassesOwnership() {
		events, err = s.eventRepo.List(ctx)
	} else {
		events, err = s.eventRepo.ListByCreator(ctx, principal.UserID)
	}
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrNoEventsVisible
	}

	event := events[0]
	if err := s.refresh(ctx, principal.SessionID, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Authorize fetches the event and checks the principal may act on it
func (s *eventContextService) Authorize(ctx context.Context, principal domain.Principal, eventID int64) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		s.countDenial(ctx)
		return nil, ErrNotFound
	}
	if !principal.CanAccess(event) {
		s.countDenial(ctx)
		return nil, ErrNotFound
	}
	return event, nil
}

// refresh re-persists the full event record into the session and blocks
// until the store acknowledges the write. Responding before the write lands
// would let the next request on this session read a stale snapshot.
func (s *eventContextService) refresh(ctx context.Context, sessionID string, event *domain.Event) error {
	if sessionID == "" {
		return nil
	}

	snap := &session.Snapshot{
		EventID:   event.ID,
		Event:     event,
		UpdatedAt: time.Now(),
	}
	if err := s.sessions.Put(ctx, sessionID, snap); err != nil {
		logger.WithContext(ctx).Error("session snapshot write failed",
			zap.String("session_id", sessionID),
			zap.Int64("event_id", event.ID),
			zap.Error(err))
		return ErrSessionWrite
	}
	return nil
}

// ClearSession drops the session's event snapshot
func (s *eventContextService) ClearSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
