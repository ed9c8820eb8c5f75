package webhook

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/finwellhq/notify-service/internal/model"
)

var ErrWebhookEventNotFound = errors.New("webhook event not found")

// claimWindow is how long a claimed event stays invisible to other sweeps.
// A sweep that crashes mid-delivery releases its claims after this window.
const claimWindow = time.Minute

// Repository provides methods to interact with the webhook_events table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new webhook event repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateEvent inserts a new pending webhook event and returns its ID.
func (r *Repository) CreateEvent(ctx context.Context, e model.WebhookEvent) (uuid.UUID, error) {
	query := `
		INSERT INTO webhook_events (
		    event_type, user_id, department_id, payload, status, retry_count, max_retries
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, e.EventType, e.UserID, e.DepartmentID, []byte(e.Payload),
		model.WebhookStatusPending, 0, e.MaxRetries,
	).Scan(&e.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create webhook event: %w", err)
	}

	return e.ID, nil
}

// ClaimPendingEvents atomically claims every pending or retrying event that
// is not already held by a concurrent sweep, and returns the claimed rows.
//
// The claim is a claimed_at stamp rather than a status transition, so the
// pending -> sent/retrying/failed invariant stays intact. Stale claims
// (older than the claim window) are re-claimable.
func (r *Repository) ClaimPendingEvents(ctx context.Context) ([]model.WebhookEvent, error) {
	query := `
		UPDATE webhook_events
		SET claimed_at = now()
		WHERE status IN ('pending', 'retrying')
		  AND (claimed_at IS NULL OR claimed_at < now() - interval '1 minute')
		RETURNING id, event_type, user_id, department_id, payload, status,
		          retry_count, max_retries, last_error, created_at, sent_at;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to claim pending webhook events: %w", err)
	}
	defer rows.Close()

	var events []model.WebhookEvent
	for rows.Next() {
		var (
			e         model.WebhookEvent
			payload   []byte
			lastError *string
		)
		if err := rows.Scan(
			&e.ID, &e.EventType, &e.UserID, &e.DepartmentID, &payload, &e.Status,
			&e.RetryCount, &e.MaxRetries, &lastError, &e.CreatedAt, &e.SentAt,
		); err != nil {
			return nil, err
		}

		e.Payload = payload
		if lastError != nil {
			e.LastError = *lastError
		}

		events = append(events, e)
	}

	return events, rows.Err()
}

// ClaimEvent claims a single event for immediate delivery, reporting whether
// the claim won. Used by the trigger fast path so it cannot race a
// concurrently running sweep.
func (r *Repository) ClaimEvent(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE webhook_events
		SET claimed_at = now()
		WHERE id = $1
		  AND status IN ('pending', 'retrying')
		  AND (claimed_at IS NULL OR claimed_at < now() - interval '1 minute')
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to claim webhook event: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}

// MarkSent transitions an event to sent and stamps the delivery time.
// Sent events are terminal and never touched again.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE webhook_events
		SET status = 'sent', sent_at = now(), claimed_at = NULL
		WHERE id = $1 AND status <> 'sent';
    `

	return r.exec(ctx, query, id)
}

// MarkRetrying increments the retry counter and schedules the event for the
// next sweep.
func (r *Repository) MarkRetrying(ctx context.Context, id uuid.UUID, retryCount int, lastError string) error {
	query := `
		UPDATE webhook_events
		SET status = 'retrying', retry_count = $2, last_error = $3, claimed_at = NULL
		WHERE id = $1;
    `

	return r.exec(ctx, query, id, retryCount, lastError)
}

// MarkFailed transitions an event to its terminal failed state.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, lastError string) error {
	query := `
		UPDATE webhook_events
		SET status = 'failed', retry_count = $2, last_error = $3, claimed_at = NULL
		WHERE id = $1;
    `

	return r.exec(ctx, query, id, retryCount, lastError)
}

// GetEventByID retrieves one webhook event.
func (r *Repository) GetEventByID(ctx context.Context, id uuid.UUID) (model.WebhookEvent, error) {
	query := `
		SELECT id, event_type, user_id, department_id, payload, status,
		       retry_count, max_retries, last_error, created_at, sent_at
		FROM webhook_events
		WHERE id = $1;
    `

	var (
		e         model.WebhookEvent
		payload   []byte
		lastError *string
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.EventType, &e.UserID, &e.DepartmentID, &payload, &e.Status,
		&e.RetryCount, &e.MaxRetries, &lastError, &e.CreatedAt, &e.SentAt,
	)
	if err != nil {
		return model.WebhookEvent{}, fmt.Errorf("failed to get webhook event: %w", err)
	}

	e.Payload = payload
	if lastError != nil {
		e.LastError = *lastError
	}

	return e, nil
}

func (r *Repository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update webhook event: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrWebhookEventNotFound
	}

	return nil
}
