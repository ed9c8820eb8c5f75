package webhook

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/finwellhq/notify-service/internal/model"
)

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestRepository_CreateEvent(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	userID := "u-1"
	payload := json.RawMessage(`{"to_tier":"gold"}`)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO webhook_events")).
		WithArgs(model.WebhookRewardTierUpgrade, &userID, nil, []byte(payload), model.WebhookStatusPending, 0, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	got, err := repo.CreateEvent(context.Background(), model.WebhookEvent{
		EventType:  model.WebhookRewardTierUpgrade,
		UserID:     &userID,
		Payload:    payload,
		MaxRetries: 3,
	})

	assert.NoError(t, err)
	assert.Equal(t, id, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ClaimPendingEvents(t *testing.T) {
	repo, mock := newTestRepo(t)

	id1 := uuid.New()
	id2 := uuid.New()
	userID := "u-1"
	now := time.Now().UTC()
	lastError := "503"

	rows := sqlmock.NewRows([]string{
		"id", "event_type", "user_id", "department_id", "payload", "status",
		"retry_count", "max_retries", "last_error", "created_at", "sent_at",
	}).
		AddRow(id1, "reward_tier_upgrade", &userID, nil, []byte(`{}`), "pending", 0, 3, nil, now, nil).
		AddRow(id2, "new_recommendation", &userID, nil, []byte(`{}`), "retrying", 2, 3, &lastError, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SET claimed_at = now()")).
		WillReturnRows(rows)

	events, err := repo.ClaimPendingEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, id1, events[0].ID)
	assert.Equal(t, model.WebhookStatusPending, events[0].Status)
	assert.Equal(t, 2, events[1].RetryCount)
	assert.Equal(t, "503", events[1].LastError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ClaimEvent(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET claimed_at = now()")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	claimed, err := repo.ClaimEvent(context.Background(), id)

	assert.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ClaimEvent_AlreadyHeld(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET claimed_at = now()")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	claimed, err := repo.ClaimEvent(context.Background(), id)

	assert.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkSent(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'sent'")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkSent(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkSent_AlreadySent(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'sent'")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSent(context.Background(), id)

	assert.ErrorIs(t, err, ErrWebhookEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkRetrying(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'retrying'")).
		WithArgs(id, 2, "timeout").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkRetrying(context.Background(), id, 2, "timeout"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkFailed(t *testing.T) {
	repo, mock := newTestRepo(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'failed'")).
		WithArgs(id, 3, "connection refused").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkFailed(context.Background(), id, 3, "connection refused"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetEventByID(t *testing.T) {
	repo, mock := newTestRepo(t)

	id := uuid.New()
	userID := "u-1"
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "event_type", "user_id", "department_id", "payload", "status",
		"retry_count", "max_retries", "last_error", "created_at", "sent_at",
	}).
		AddRow(id, "fwi_milestone", &userID, nil, []byte(`{"milestone":"first_budget"}`), "pending", 0, 3, nil, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM webhook_events")).
		WithArgs(id).
		WillReturnRows(rows)

	event, err := repo.GetEventByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, event.ID)
	assert.Equal(t, model.WebhookFWIMilestone, event.EventType)
	assert.JSONEq(t, `{"milestone":"first_budget"}`, string(event.Payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}
