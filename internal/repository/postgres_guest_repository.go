package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

const guestColumns = `id, event_id, first_name, last_name, COALESCE(email, ''), COALESCE(phone, ''), side, COALESCE(relationship, ''), rsvp_status, plus_one_allowed, plus_one_confirmed, COALESCE(plus_one_name, ''), COALESCE(plus_one_email, ''), COALESCE(plus_one_phone, ''), number_of_children, COALESCE(dietary_restrictions, ''), COALESCE(special_requirements, ''), COALESCE(table_assignment, ''), needs_accommodation, COALESCE(notes, ''), created_at, updated_at`

// PostgresGuestRepository implements GuestRepository using PostgreSQL
type PostgresGuestRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresGuestRepository creates a new PostgresGuestRepository
func NewPostgresGuestRepository(pool *pgxpool.Pool) *PostgresGuestRepository {
	return &PostgresGuestRepository{pool: pool}
}

// Create creates a new guest
func (r *PostgresGuestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	query := `
		INSERT INTO guests (event_id, first_name, last_name, email, phone, side, relationship, rsvp_status, plus_one_allowed, plus_one_confirmed, plus_one_name, plus_one_email, plus_one_phone, number_of_children, dietary_restrictions, special_requirements, table_assignment, needs_accommodation, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		guest.EventID,
		guest.FirstName,
		guest.LastName,
		guest.Email,
		guest.Phone,
		guest.Side,
		guest.Relationship,
		guest.RSVPStatus,
		guest.PlusOneAllowed,
		guest.PlusOneConfirmed,
		guest.PlusOneName,
		guest.PlusOneEmail,
		guest.PlusOnePhone,
		guest.NumberOfChildren,
		guest.DietaryRestrictions,
		guest.SpecialRequirements,
		guest.TableAssignment,
		guest.NeedsAccommodation,
		guest.Notes,
		guest.CreatedAt,
		guest.UpdatedAt,
	).Scan(&guest.ID)
}

// GetByID retrieves a guest by ID
func (r *PostgresGuestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

	guest := &domain.Guest{}
	err := scanGuest(r.pool.QueryRow(ctx, query, id), guest)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return guest, nil
}

// ListByEvent retrieves an event's guests, optionally filtered
func (r *PostgresGuestRepository) ListByEvent(ctx context.Context, eventID int64, filter GuestFilter) ([]*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1`
	args := []interface{}{eventID}

	if filter.RSVPStatus != "" {
		args = append(args, filter.RSVPStatus)
		query += fmt.Sprintf(" AND rsvp_status = $%d", len(args))
	}
	if filter.Side != "" {
		args = append(args, filter.Side)
		query += fmt.Sprintf(" AND side = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args))
	}
	query += " ORDER BY last_name, first_name, id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []*domain.Guest
	for rows.Next() {
		guest := &domain.Guest{}
		if err := scanGuest(rows, guest); err != nil {
			return nil, err
		}
		guests = append(guests, guest)
	}
	return guests, rows.Err()
}

// CountByEventAndStatus counts an event's guests per RSVP status
func (r *PostgresGuestRepository) CountByEventAndStatus(ctx context.Context, eventID int64) (map[domain.RSVPStatus]int, error) {
	query := `SELECT rsvp_status, COUNT(*) FROM guests WHERE event_id = $1 GROUP BY rsvp_status`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.RSVPStatus]int)
	for rows.Next() {
		var status domain.RSVPStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// Update updates a guest. The event_id column is deliberately absent from
// the SET list so a guest can never migrate between events.
func (r *PostgresGuestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	query := `
		UPDATE guests
		SET first_name = $2, last_name = $3, email = $4, phone = $5, side = $6, relationship = $7, rsvp_status = $8, plus_one_allowed = $9, plus_one_confirmed = $10, plus_one_name = $11, plus_one_email = $12, plus_one_phone = $13, number_of_children = $14, dietary_restrictions = $15, special_requirements = $16, table_assignment = $17, needs_accommodation = $18, notes = $19, updated_at = $20
		WHERE id = $1
	`
	guest.UpdatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		guest.ID,
		guest.FirstName,
		guest.LastName,
		guest.Email,
		guest.Phone,
		guest.Side,
		guest.Relationship,
		guest.RSVPStatus,
		guest.PlusOneAllowed,
		guest.PlusOneConfirmed,
		guest.PlusOneName,
		guest.PlusOneEmail,
		guest.PlusOnePhone,
		guest.NumberOfChildren,
		guest.DietaryRestrictions,
		guest.SpecialRequirements,
		guest.TableAssignment,
		guest.NeedsAccommodation,
		guest.Notes,
		guest.UpdatedAt,
	)
	return err
}

// Delete deletes a guest
func (r *PostgresGuestRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM guests WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func scanGuest(row pgx.Row, guest *domain.Guest) error {
	return row.Scan(
		&guest.ID,
		&guest.EventID,
		&guest.FirstName,
		&guest.LastName,
		&guest.Email,
		&guest.Phone,
		&guest.Side,
		&guest.Relationship,
		&guest.RSVPStatus,
		&guest.PlusOneAllowed,
		&guest.PlusOneConfirmed,
		&guest.PlusOneName,
		&guest.PlusOneEmail,
		&guest.PlusOnePhone,
		&guest.NumberOfChildren,
		&guest.DietaryRestrictions,
		&guest.SpecialRequirements,
		&guest.TableAssignment,
		&guest.NeedsAccommodation,
		&guest.Notes,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)
}
