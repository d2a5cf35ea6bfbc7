package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// PostgresMealRepository implements MealRepository using PostgreSQL
type PostgresMealRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMealRepository creates a new PostgresMealRepository
func NewPostgresMealRepository(pool *pgxpool.Pool) *PostgresMealRepository {
	return &PostgresMealRepository{pool: pool}
}

// CreateOption creates a new meal option
func (r *PostgresMealRepository) CreateOption(ctx context.Context, option *domain.MealOption) error {
	query := `
		INSERT INTO meal_options (ceremony_id, event_id, name, description, vegetarian, vegan, gluten_free, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		option.CeremonyID,
		option.EventID,
		option.Name,
		option.Description,
		option.Vegetarian,
		option.Vegan,
		option.GlutenFree,
		option.CreatedAt,
		option.UpdatedAt,
	).Scan(&option.ID)
}

// GetOptionByID retrieves a meal option by ID
func (r *PostgresMealRepository) GetOptionByID(ctx context.Context, id int64) (*domain.MealOption, error) {
	query := `
		SELECT id, ceremony_id, event_id, name, COALESCE(description, ''), vegetarian, vegan, gluten_free, created_at, updated_at
		FROM meal_options
		WHERE id = $1
	`
	option := &domain.MealOption{}
	err := scanMealOption(r.pool.QueryRow(ctx, query, id), option)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return option, nil
}

// ListOptionsByCeremony retrieves a ceremony's meal options
func (r *PostgresMealRepository) ListOptionsByCeremony(ctx context.Context, ceremonyID int64) ([]*domain.MealOption, error) {
	query := `
		SELECT id, ceremony_id, event_id, name, COALESCE(description, ''), vegetarian, vegan, gluten_free, created_at, updated_at
		FROM meal_options
		WHERE ceremony_id = $1
		ORDER BY name, id
	`
	rows, err := r.pool.Query(ctx, query, ceremonyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []*domain.MealOption
	for rows.Next() {
		option := &domain.MealOption{}
		if err := scanMealOption(rows, option); err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, rows.Err()
}

// UpdateOption updates a meal option
func (r *PostgresMealRepository) UpdateOption(ctx context.Context, option *domain.MealOption) error {
	query := `
		UPDATE meal_options
		SET name = $2, description = $3, vegetarian = $4, vegan = $5, gluten_free = $6, updated_at = $7
		WHERE id = $1
	`
	option.UpdatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		option.ID,
		option.Name,
		option.Description,
		option.Vegetarian,
		option.Vegan,
		option.GlutenFree,
		option.UpdatedAt,
	)
	return err
}

// DeleteOption deletes a meal option and its selections
func (r *PostgresMealRepository) DeleteOption(ctx context.Context, id int64) error {
	query := `DELETE FROM meal_options WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// UpsertSelection records or replaces a guest's meal choice for a ceremony
func (r *PostgresMealRepository) UpsertSelection(ctx context.Context, selection *domain.MealSelection) error {
	query := `
		INSERT INTO meal_selections (guest_id, ceremony_id, meal_option_id, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (guest_id, ceremony_id) DO UPDATE SET meal_option_id = EXCLUDED.meal_option_id, notes = EXCLUDED.notes, updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	now := time.Now()
	if selection.CreatedAt.IsZero() {
		selection.CreatedAt = now
	}
	selection.UpdatedAt = now

	return r.pool.QueryRow(ctx, query,
		selection.GuestID,
		selection.CeremonyID,
		selection.MealOptionID,
		selection.Notes,
		selection.CreatedAt,
		selection.UpdatedAt,
	).Scan(&selection.ID)
}

// GetSelectionByID retrieves a selection by ID
func (r *PostgresMealRepository) GetSelectionByID(ctx context.Context, id int64) (*domain.MealSelection, error) {
	query := `
		SELECT id, guest_id, ceremony_id, meal_option_id, COALESCE(notes, ''), created_at, updated_at
		FROM meal_selections
		WHERE id = $1
	`
	selection := &domain.MealSelection{}
	err := scanMealSelection(r.pool.QueryRow(ctx, query, id), selection)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return selection, nil
}

// ListSelectionsByGuest retrieves a guest's meal selections
func (r *PostgresMealRepository) ListSelectionsByGuest(ctx context.Context, guestID int64) ([]*domain.MealSelection, error) {
	query := `
		SELECT id, guest_id, ceremony_id, meal_option_id, COALESCE(notes, ''), created_at, updated_at
		FROM meal_selections
		WHERE guest_id = $1
		ORDER BY id
	`
	return r.listSelections(ctx, query, guestID)
}

// ListSelectionsByCeremony retrieves a ceremony's meal selections
func (r *PostgresMealRepository) ListSelectionsByCeremony(ctx context.Context, ceremonyID int64) ([]*domain.MealSelection, error) {
	query := `
		SELECT id, guest_id, ceremony_id, meal_option_id, COALESCE(notes, ''), created_at, updated_at
		FROM meal_selections
		WHERE ceremony_id = $1
		ORDER BY id
	`
	return r.listSelections(ctx, query, ceremonyID)
}

func (r *PostgresMealRepository) listSelections(ctx context.Context, query string, arg interface{}) ([]*domain.MealSelection, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var selections []*domain.MealSelection
	for rows.Next() {
		selection := &domain.MealSelection{}
		if err := scanMealSelection(rows, selection); err != nil {
			return nil, err
		}
		selections = append(selections, selection)
	}
	return selections, rows.Err()
}

// DeleteSelection deletes a selection
func (r *PostgresMealRepository) DeleteSelection(ctx context.Context, id int64) error {
	query := `DELETE FROM meal_selections WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

func scanMealOption(row pgx.Row, option *domain.MealOption) error {
	return row.Scan(
		&option.ID,
		&option.CeremonyID,
		&option.EventID,
		&option.Name,
		&option.Description,
		&option.Vegetarian,
		&option.Vegan,
		&option.GlutenFree,
		&option.CreatedAt,
		&option.UpdatedAt,
	)
}

func scanMealSelection(row pgx.Row, selection *domain.MealSelection) error {
	return row.Scan(
		&selection.ID,
		&selection.GuestID,
		&selection.CeremonyID,
		&selection.MealOptionID,
		&selection.Notes,
		&selection.CreatedAt,
		&selection.UpdatedAt,
	)
}
