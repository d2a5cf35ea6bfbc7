package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// PostgresAccommodationRepository implements AccommodationRepository using PostgreSQL
type PostgresAccommodationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccommodationRepository creates a new PostgresAccommodationRepository
func NewPostgresAccommodationRepository(pool *pgxpool.Pool) *PostgresAccommodationRepository {
	return &PostgresAccommodationRepository{pool: pool}
}

// Create creates a new accommodation
func (r *PostgresAccommodationRepository) Create(ctx context.Context, accommodation *domain.Accommodation) error {
	query := `
		INSERT INTO accommodations (event_id, hotel_name, room_type, capacity, total_rooms, allocated_rooms, price_per_night, special_features, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		accommodation.EventID,
		accommodation.HotelName,
		accommodation.RoomType,
		accommodation.Capacity,
		accommodation.TotalRooms,
		accommodation.AllocatedRooms,
		accommodation.PricePerNight,
		accommodation.SpecialFeatures,
		accommodation.CreatedAt,
		accommodation.UpdatedAt,
	).Scan(&accommodation.ID)
}

// GetByID retrieves an accommodation by ID
func (r *PostgresAccommodationRepository) GetByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	query := `
		SELECT id, event_id, hotel_name, COALESCE(room_type, ''), capacity, total_rooms, allocated_rooms, COALESCE(price_per_night, ''), COALESCE(special_features, ''), created_at, updated_at
		FROM accommodations
		WHERE id = $1
	`
	accommodation := &domain.Accommodation{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&accommodation.ID,
		&accommodation.EventID,
		&accommodation.HotelName,
		&accommodation.RoomType,
		&accommodation.Capacity,
		&accommodation.TotalRooms,
		&accommodation.AllocatedRooms,
		&accommodation.PricePerNight,
		&accommodation.SpecialFeatures,
		&accommodation.CreatedAt,
		&accommodation.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return accommodation, nil
}

// ListByEvent retrieves an event's accommodations
func (r *PostgresAccommodationRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Accommodation, error) {
	query := `
		SELECT id, event_id, hotel_name, COALESCE(room_type, ''), capacity, total_rooms, allocated_rooms, COALESCE(price_per_night, ''), COALESCE(special_features, ''), created_at, updated_at
		FROM accommodations
		WHERE event_id = $1
		ORDER BY hotel_name, id
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accommodations []*domain.Accommodation
	for rows.Next() {
		accommodation := &domain.Accommodation{}
		err := rows.Scan(
			&accommodation.ID,
			&accommodation.EventID,
			&accommodation.HotelName,
			&accommodation.RoomType,
			&accommodation.Capacity,
			&accommodation.TotalRooms,
			&accommodation.AllocatedRooms,
			&accommodation.PricePerNight,
			&accommodation.SpecialFeatures,
			&accommodation.CreatedAt,
			&accommodation.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		accommodations = append(accommodations, accommodation)
	}
	return accommodations, rows.Err()
}

// Update updates an accommodation
func (r *PostgresAccommodationRepository) Update(ctx context.Context, accommodation *domain.Accommodation) error {
	query := `
		UPDATE accommodations
		SET hotel_name = $2, room_type = $3, capacity = $4, total_rooms = $5, price_per_night = $6, special_features = $7, updated_at = $8
		WHERE id = $1
	`
	accommodation.UpdatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		accommodation.ID,
		accommodation.HotelName,
		accommodation.RoomType,
		accommodation.Capacity,
		accommodation.TotalRooms,
		accommodation.PricePerNight,
		accommodation.SpecialFeatures,
		accommodation.UpdatedAt,
	)
	return err
}

// Delete deletes an accommodation and its allocations
func (r *PostgresAccommodationRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM accommodations WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// CreateAllocation assigns a guest a room. The allocated counter is bumped
// with a guarded UPDATE in the same transaction so two concurrent requests
// cannot both take the last room.
func (r *PostgresAccommodationRepository) CreateAllocation(ctx context.Context, allocation *domain.RoomAllocation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE accommodations
		SET allocated_rooms = allocated_rooms + 1, updated_at = $2
		WHERE id = $1 AND allocated_rooms < total_rooms
	`, allocation.AccommodationID, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAllocationNoRoomsLeft
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO room_allocations (accommodation_id, guest_id, check_in, check_out, special_requests, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		allocation.AccommodationID,
		allocation.GuestID,
		allocation.CheckIn,
		allocation.CheckOut,
		allocation.SpecialRequests,
		allocation.CreatedAt,
		allocation.UpdatedAt,
	).Scan(&allocation.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetAllocationByID retrieves an allocation by ID
func (r *PostgresAccommodationRepository) GetAllocationByID(ctx context.Context, id int64) (*domain.RoomAllocation, error) {
	query := `
		SELECT id, accommodation_id, guest_id, check_in, check_out, COALESCE(special_requests, ''), created_at, updated_at
		FROM room_allocations
		WHERE id = $1
	`
	allocation := &domain.RoomAllocation{}
	err := scanAllocation(r.pool.QueryRow(ctx, query, id), allocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return allocation, nil
}

// ListAllocationsByAccommodation retrieves an accommodation's allocations
func (r *PostgresAccommodationRepository) ListAllocationsByAccommodation(ctx context.Context, accommodationID int64) ([]*domain.RoomAllocation, error) {
	query := `
		SELECT id, accommodation_id, guest_id, check_in, check_out, COALESCE(special_requests, ''), created_at, updated_at
		FROM room_allocations
		WHERE accommodation_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []*domain.RoomAllocation
	for rows.Next() {
		allocation := &domain.RoomAllocation{}
		if err := scanAllocation(rows, allocation); err != nil {
			return nil, err
		}
		allocations = append(allocations, allocation)
	}
	return allocations, rows.Err()
}

// GetAllocationByGuest retrieves a guest's allocation, if any
func (r *PostgresAccommodationRepository) GetAllocationByGuest(ctx context.Context, guestID int64) (*domain.RoomAllocation, error) {
	query := `
		SELECT id, accommodation_id, guest_id, check_in, check_out, COALESCE(special_requests, ''), created_at, updated_at
		FROM room_allocations
		WHERE guest_id = $1
	`
	allocation := &domain.RoomAllocation{}
	err := scanAllocation(r.pool.QueryRow(ctx, query, guestID), allocation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return allocation, nil
}

// UpdateAllocation updates an allocation's stay details
func (r *PostgresAccommodationRepository) UpdateAllocation(ctx context.Context, allocation *domain.RoomAllocation) error {
	query := `
		UPDATE room_allocations
		SET check_in = $2, check_out = $3, special_requests = $4, updated_at = $5
		WHERE id = $1
	`
	allocation.UpdatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		allocation.ID,
		allocation.CheckIn,
		allocation.CheckOut,
		allocation.SpecialRequests,
		allocation.UpdatedAt,
	)
	return err
}

// DeleteAllocation releases a room, decrementing the allocated count
func (r *PostgresAccommodationRepository) DeleteAllocation(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var accommodationID int64
	err = tx.QueryRow(ctx, `DELETE FROM room_allocations WHERE id = $1 RETURNING accommodation_id`, id).Scan(&accommodationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE accommodations
		SET allocated_rooms = GREATEST(allocated_rooms - 1, 0), updated_at = $2
		WHERE id = $1
	`, accommodationID, time.Now())
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanAllocation(row pgx.Row, allocation *domain.RoomAllocation) error {
	return row.Scan(
		&allocation.ID,
		&allocation.AccommodationID,
		&allocation.GuestID,
		&allocation.CheckIn,
		&allocation.CheckOut,
		&allocation.SpecialRequests,
		&allocation.CreatedAt,
		&allocation.UpdatedAt,
	)
}
