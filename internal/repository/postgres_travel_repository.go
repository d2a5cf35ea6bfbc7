package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// PostgresTravelRepository implements TravelRepository using PostgreSQL
type PostgresTravelRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTravelRepository creates a new PostgresTravelRepository
func NewPostgresTravelRepository(pool *pgxpool.Pool) *PostgresTravelRepository {
	return &PostgresTravelRepository{pool: pool}
}

// Upsert records or replaces a guest's travel info
func (r *PostgresTravelRepository) Upsert(ctx context.Context, info *domain.TravelInfo) error {
	query := `
		INSERT INTO travel_info (guest_id, mode, arrival_date, arrival_time, departure_date, departure_time, origin, flight_number, needs_pickup, needs_drop, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (guest_id) DO UPDATE SET mode = EXCLUDED.mode, arrival_date = EXCLUDED.arrival_date, arrival_time = EXCLUDED.arrival_time, departure_date = EXCLUDED.departure_date, departure_time = EXCLUDED.departure_time, origin = EXCLUDED.origin, flight_number = EXCLUDED.flight_number, needs_pickup = EXCLUDED.needs_pickup, needs_drop = EXCLUDED.needs_drop, updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	now := time.Now()
	if info.CreatedAt.IsZero() {
		info.CreatedAt = now
	}
	info.UpdatedAt = now

	return r.pool.QueryRow(ctx, query,
		info.GuestID,
		info.Mode,
		info.ArrivalDate,
		info.ArrivalTime,
		info.DepartureDate,
		info.DepartureTime,
		info.Origin,
		info.FlightNumber,
		info.NeedsPickup,
		info.NeedsDrop,
		info.CreatedAt,
		info.UpdatedAt,
	).Scan(&info.ID)
}

// GetByGuest retrieves a guest's travel info, if any
func (r *PostgresTravelRepository) GetByGuest(ctx context.Context, guestID int64) (*domain.TravelInfo, error) {
	query := `
		SELECT id, guest_id, mode, arrival_date, COALESCE(arrival_time, ''), departure_date, COALESCE(departure_time, ''), COALESCE(origin, ''), COALESCE(flight_number, ''), needs_pickup, needs_drop, created_at, updated_at
		FROM travel_info
		WHERE guest_id = $1
	`
	info := &domain.TravelInfo{}
	err := scanTravelInfo(r.pool.QueryRow(ctx, query, guestID), info)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return info, nil
}

// ListByEvent retrieves travel info for all of an event's guests
func (r *PostgresTravelRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.TravelInfo, error) {
	query := `
		SELECT t.id, t.guest_id, t.mode, t.arrival_date, COALESCE(t.arrival_time, ''), t.departure_date, COALESCE(t.departure_time, ''), COALESCE(t.origin, ''), COALESCE(t.flight_number, ''), t.needs_pickup, t.needs_drop, t.created_at, t.updated_at
		FROM travel_info t
		JOIN guests g ON g.id = t.guest_id
		WHERE g.event_id = $1
		ORDER BY t.id
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []*domain.TravelInfo
	for rows.Next() {
		info := &domain.TravelInfo{}
		if err := scanTravelInfo(rows, info); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteByGuest removes a guest's travel info
func (r *PostgresTravelRepository) DeleteByGuest(ctx context.Context, guestID int64) error {
	query := `DELETE FROM travel_info WHERE guest_id = $1`
	_, err := r.pool.Exec(ctx, query, guestID)
	return err
}

func scanTravelInfo(row pgx.Row, info *domain.TravelInfo) error {
	return row.Scan(
		&info.ID,
		&info.GuestID,
		&info.Mode,
		&info.ArrivalDate,
		&info.ArrivalTime,
		&info.DepartureDate,
		&info.DepartureTime,
		&info.Origin,
		&info.FlightNumber,
		&info.NeedsPickup,
		&info.NeedsDrop,
		&info.CreatedAt,
		&info.UpdatedAt,
	)
}
