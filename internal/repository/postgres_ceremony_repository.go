package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// PostgresCeremonyRepository implements CeremonyRepository using PostgreSQL
type PostgresCeremonyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCeremonyRepository creates a new PostgresCeremonyRepository
func NewPostgresCeremonyRepository(pool *pgxpool.Pool) *PostgresCeremonyRepository {
	return &PostgresCeremonyRepository{pool: pool}
}

// Create creates a new ceremony
func (r *PostgresCeremonyRepository) Create(ctx context.Context, ceremony *domain.Ceremony) error {
	query := `
		INSERT INTO ceremonies (event_id, name, date, start_time, end_time, location, attire, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		ceremony.EventID,
		ceremony.Name,
		ceremony.Date,
		ceremony.StartTime,
		ceremony.EndTime,
		ceremony.Location,
		ceremony.Attire,
		ceremony.Description,
		ceremony.CreatedAt,
		ceremony.UpdatedAt,
	).Scan(&ceremony.ID)
}

// GetByID retrieves a ceremony by ID
func (r *PostgresCeremonyRepository) GetByID(ctx context.Context, id int64) (*domain.Ceremony, error) {
	query := `
		SELECT id, event_id, name, date, COALESCE(start_time, ''), COALESCE(end_time, ''), COALESCE(location, ''), COALESCE(attire, ''), COALESCE(description, ''), created_at, updated_at
		FROM ceremonies
		WHERE id = $1
	`
	ceremony := &domain.Ceremony{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ceremony.ID,
		&ceremony.EventID,
		&ceremony.Name,
		&ceremony.Date,
		&ceremony.StartTime,
		&ceremony.EndTime,
		&ceremony.Location,
		&ceremony.Attire,
		&ceremony.Description,
		&ceremony.CreatedAt,
		&ceremony.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ceremony, nil
}

// ListByEvent retrieves an event's ceremonies ordered by date
func (r *PostgresCeremonyRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Ceremony, error) {
	query := `
		SELECT id, event_id, name, date, COALESCE(start_time, ''), COALESCE(end_time, ''), COALESCE(location, ''), COALESCE(attire, ''), COALESCE(description, ''), created_at, updated_at
		FROM ceremonies
		WHERE event_id = $1
		ORDER BY date, start_time, id
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ceremonies []*domain.Ceremony
	for rows.Next() {
		ceremony := &domain.Ceremony{}
		err := rows.Scan(
			&ceremony.ID,
			&ceremony.EventID,
			&ceremony.Name,
			&ceremony.Date,
			&ceremony.StartTime,
			&ceremony.EndTime,
			&ceremony.Location,
			&ceremony.Attire,
			&ceremony.Description,
			&ceremony.CreatedAt,
			&ceremony.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		ceremonies = append(ceremonies, ceremony)
	}
	return ceremonies, rows.Err()
}

// Update updates a ceremony
func (r *PostgresCeremonyRepository) Update(ctx context.Context, ceremony *domain.Ceremony) error {
	query := `
		UPDATE ceremonies
		SET name = $2, date = $3, start_time = $4, end_time = $5, location = $6, attire = $7, description = $8, updated_at = $9
		WHERE id = $1
	`
	ceremony.UpdatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		ceremony.ID,
		ceremony.Name,
		ceremony.Date,
		ceremony.StartTime,
		ceremony.EndTime,
		ceremony.Location,
		ceremony.Attire,
		ceremony.Description,
		ceremony.UpdatedAt,
	)
	return err
}

// Delete deletes a ceremony
func (r *PostgresCeremonyRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM ceremonies WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// UpsertAttendance records or updates a guest's attendance at a ceremony
func (r *PostgresCeremonyRepository) UpsertAttendance(ctx context.Context, attendance *domain.CeremonyAttendance) error {
	query := `
		INSERT INTO ceremony_attendance (guest_id, ceremony_id, attending, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (guest_id, ceremony_id) DO UPDATE SET attending = EXCLUDED.attending
		RETURNING id
	`
	if attendance.CreatedAt.IsZero() {
		attendance.CreatedAt = time.Now()
	}
	return r.pool.QueryRow(ctx, query,
		attendance.GuestID,
		attendance.CeremonyID,
		attendance.Attending,
		attendance.CreatedAt,
	).Scan(&attendance.ID)
}

// ListAttendanceByCeremony retrieves all attendance records for a ceremony
func (r *PostgresCeremonyRepository) ListAttendanceByCeremony(ctx context.Context, ceremonyID int64) ([]*domain.CeremonyAttendance, error) {
	query := `
		SELECT id, guest_id, ceremony_id, attending, created_at
		FROM ceremony_attendance
		WHERE ceremony_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, ceremonyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendance(rows)
}

// ListAttendanceByGuest retrieves a guest's attendance records
func (r *PostgresCeremonyRepository) ListAttendanceByGuest(ctx context.Context, guestID int64) ([]*domain.CeremonyAttendance, error) {
	query := `
		SELECT id, guest_id, ceremony_id, attending, created_at
		FROM ceremony_attendance
		WHERE guest_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendance(rows)
}

func scanAttendance(rows pgx.Rows) ([]*domain.CeremonyAttendance, error) {
	var records []*domain.CeremonyAttendance
	for rows.Next() {
		a := &domain.CeremonyAttendance{}
		if err := rows.Scan(&a.ID, &a.GuestID, &a.CeremonyID, &a.Attending, &a.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}
