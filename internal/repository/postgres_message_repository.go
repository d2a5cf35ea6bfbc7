package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hobbist2102/rsvp-app/internal/domain"
)

// PostgresMessageRepository implements MessageRepository using PostgreSQL
type PostgresMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(pool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{pool: pool}
}

// CreateTemplate creates a new template
func (r *PostgresMessageRepository) CreateTemplate(ctx context.Context, template *domain.MessageTemplate) error {
	query := `
		INSERT INTO message_templates (event_id, name, channel, subject, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		template.EventID,
		template.Name,
		template.Channel,
		template.Subject,
		template.Body,
		template.CreatedAt,
		template.UpdatedAt,
	).Scan(&template.ID)
}

// GetTemplateByID retrieves a template by ID
func (r *PostgresMessageRepository) GetTemplateByID(ctx context.Context, id int64) (*domain.MessageTemplate, error) {
	query := `
		SELECT id, event_id, name, channel, COALESCE(subject, ''), body, created_at, updated_at
		FROM message_templates
		WHERE id = $1
	`
	template := &domain.MessageTemplate{}
	err := scanTemplate(r.pool.QueryRow(ctx, query, id), template)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return template, nil
}

// ListTemplatesByEvent retrieves an event's templates
func (r *PostgresMessageRepository) ListTemplatesByEvent(ctx context.Context, eventID int64) ([]*domain.MessageTemplate, error) {
	query := `
		SELECT id, event_id, name, channel, COALESCE(subject, ''), body, created_at, updated_at
		FROM message_templates
		WHERE event_id = $1
		ORDER BY name, id
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*domain.MessageTemplate
	for rows.Next() {
		template := &domain.MessageTemplate{}
		if err := scanTemplate(rows, template); err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}

// UpdateTemplate updates a template
func (r *PostgresMessageRepository) UpdateTemplate(ctx context.Context, template *domain.MessageTemplate) error {
	query := `
		UPDATE message_templates
		SET name = $2, channel = $3, subject = $4, body = $5, updated_at = $6
		WHERE id = $1
	`
	template.UpdatedAt = time.Now()

	_, err := r.pool.Exec(ctx, query,
		template.ID,
		template.Name,
		template.Channel,
		template.Subject,
		template.Body,
		template.UpdatedAt,
	)
	return err
}

// DeleteTemplate deletes a template
func (r *PostgresMessageRepository) DeleteTemplate(ctx context.Context, id int64) error {
	query := `DELETE FROM message_templates WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// CreateMessage records a new outbound message
func (r *PostgresMessageRepository) CreateMessage(ctx context.Context, message *domain.GuestMessage) error {
	query := `
		INSERT INTO guest_messages (event_id, guest_id, channel, recipient_name, recipient_email, recipient_phone, subject, body, status, dedup_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		message.EventID,
		message.GuestID,
		message.Channel,
		message.RecipientName,
		message.RecipientEmail,
		message.RecipientPhone,
		message.Subject,
		message.Body,
		message.Status,
		message.DedupKey,
		message.CreatedAt,
		message.UpdatedAt,
	).Scan(&message.ID)
}

// GetMessageByID retrieves a message by ID
func (r *PostgresMessageRepository) GetMessageByID(ctx context.Context, id int64) (*domain.GuestMessage, error) {
	query := messageSelect + ` WHERE id = $1`

	message := &domain.GuestMessage{}
	err := scanMessage(r.pool.QueryRow(ctx, query, id), message)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return message, nil
}

// GetMessageByDedupKey retrieves an event's message by its deduplication key
func (r *PostgresMessageRepository) GetMessageByDedupKey(ctx context.Context, eventID int64, dedupKey string) (*domain.GuestMessage, error) {
	query := messageSelect + ` WHERE event_id = $1 AND dedup_key = $2`

	message := &domain.GuestMessage{}
	err := scanMessage(r.pool.QueryRow(ctx, query, eventID, dedupKey), message)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return message, nil
}

// ListMessagesByEvent retrieves an event's messages, newest first
func (r *PostgresMessageRepository) ListMessagesByEvent(ctx context.Context, eventID int64) ([]*domain.GuestMessage, error) {
	query := messageSelect + ` WHERE event_id = $1 ORDER BY created_at DESC, id DESC`
	return r.listMessages(ctx, query, eventID)
}

// ListMessagesByGuest retrieves a guest's messages, newest first
func (r *PostgresMessageRepository) ListMessagesByGuest(ctx context.Context, guestID int64) ([]*domain.GuestMessage, error) {
	query := messageSelect + ` WHERE guest_id = $1 ORDER BY created_at DESC, id DESC`
	return r.listMessages(ctx, query, guestID)
}

func (r *PostgresMessageRepository) listMessages(ctx context.Context, query string, arg interface{}) ([]*domain.GuestMessage, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.GuestMessage
	for rows.Next() {
		message := &domain.GuestMessage{}
		if err := scanMessage(rows, message); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, rows.Err()
}

// UpdateMessageStatus advances a message through the dispatch pipeline
func (r *PostgresMessageRepository) UpdateMessageStatus(ctx context.Context, id int64, status domain.MessageStatus) error {
	query := `UPDATE guest_messages SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id, status, time.Now())
	return err
}

const messageSelect = `
	SELECT id, event_id, guest_id, channel, recipient_name, COALESCE(recipient_email, ''), COALESCE(recipient_phone, ''), COALESCE(subject, ''), body, status, COALESCE(dedup_key, ''), created_at, updated_at
	FROM guest_messages
`

func scanTemplate(row pgx.Row, template *domain.MessageTemplate) error {
	return row.Scan(
		&template.ID,
		&template.EventID,
		&template.Name,
		&template.Channel,
		&template.Subject,
		&template.Body,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
}

func scanMessage(row pgx.Row, message *domain.GuestMessage) error {
	return row.Scan(
		&message.ID,
		&message.EventID,
		&message.GuestID,
		&message.Channel,
		&message.RecipientName,
		&message.RecipientEmail,
		&message.RecipientPhone,
		&message.Subject,
		&message.Body,
		&message.Status,
		&message.DedupKey,
		&message.CreatedAt,
		&message.UpdatedAt,
	)
}
