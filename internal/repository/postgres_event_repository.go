package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

// Create creates a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (title, couple_names, bride_name, groom_name, start_date, end_date, location, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		event.Title,
		event.CoupleNames,
		event.BrideName,
		event.GroomName,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Description,
		event.CreatedBy,
		event.CreatedAt,
		event.UpdatedAt,
	).Scan(&event.ID)
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT id, title, couple_names, COALESCE(bride_name, ''), COALESCE(groom_name, ''), start_date, end_date, COALESCE(location, ''), COALESCE(description, ''), created_by, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	event := &domain.Event{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.CoupleNames,
		&event.BrideName,
		&event.GroomName,
		&event.StartDate,
		&event.EndDate,
		&event.Location,
		&event.Description,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// List retrieves all events ordered by start date
func (r *PostgresEventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, title, couple_names, COALESCE(bride_name, ''), COALESCE(groom_name, ''), start_date, end_date, COALESCE(location, ''), COALESCE(description, ''), created_by, created_at, updated_at
		FROM events
		ORDER BY start_date, id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByCreator retrieves the events created by the given user
func (r *PostgresEventRepository) ListByCreator(ctx context.Context, userID int64) ([]*domain.Event, error) {
	query := `
		SELECT id, title, couple_names, COALESCE(bride_name, ''), COALESCE(groom_name, ''), start_date, end_date, COALESCE(location, ''), COALESCE(description, ''), created_by, created_at, updated_at
		FROM events
		WHERE created_by = $1
		ORDER BY start_date, id
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		event := &domain.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.CoupleNames,
			&event.BrideName,
			&event.GroomName,
			&event.StartDate,
			&event.EndDate,
			&event.Location,
			&event.Description,
			&event.CreatedBy,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Update updates an event
func (r *PostgresEventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
		UPDATE events
		SET title = $2, couple_names = $3, bride_name = $4, groom_name = $5, start_date = $6, end_date = $7, location = $8, description = $9, updated_at = $10
		WHERE id = $1
	`
	event.UpdatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Title,
		event.CoupleNames,
		event.BrideName,
		event.GroomName,
		event.StartDate,
		event.EndDate,
		event.Location,
		event.Description,
		event.UpdatedAt,
	)
	return err
}

// Delete deletes an event
func (r *PostgresEventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
