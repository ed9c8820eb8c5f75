package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WebhookEventType enumerates the integration events delivered to external
// HTTP endpoints.
type WebhookEventType string

const (
	WebhookRewardTierUpgrade     WebhookEventType = "reward_tier_upgrade"
	WebhookNewRecommendation     WebhookEventType = "new_recommendation"
	WebhookInterventionStarted   WebhookEventType = "intervention_started"
	WebhookInterventionCompleted WebhookEventType = "intervention_completed"
	WebhookEWARateImproved       WebhookEventType = "ewa_rate_improved"
	WebhookFWIMilestone          WebhookEventType = "fwi_milestone"
	WebhookDepartmentMilestone   WebhookEventType = "department_milestone"
)

// Valid reports whether t is one of the known webhook event types.
func (t WebhookEventType) Valid() bool {
	switch t {
	case WebhookRewardTierUpgrade,
		WebhookNewRecommendation,
		WebhookInterventionStarted,
		WebhookInterventionCompleted,
		WebhookEWARateImproved,
		WebhookFWIMilestone,
		WebhookDepartmentMilestone:
		return true
	}
	return false
}

// WebhookStatus is the delivery state of a webhook event.
//
// Transitions: pending -> sent, or pending -> retrying -> ... -> failed.
// Once sent or failed the event is terminal.
type WebhookStatus string

const (
	WebhookStatusPending  WebhookStatus = "pending"
	WebhookStatusSent     WebhookStatus = "sent"
	WebhookStatusFailed   WebhookStatus = "failed"
	WebhookStatusRetrying WebhookStatus = "retrying"
)

// DefaultMaxRetries bounds delivery attempts per webhook event.
const DefaultMaxRetries = 3

// WebhookEvent is the durable unit of reliable webhook delivery.
//
// It is logged before any delivery attempt so a crash between logging and
// sending leaves a recoverable pending record rather than a lost event.
type WebhookEvent struct {
	ID           uuid.UUID        `json:"id"`
	EventType    WebhookEventType `json:"event_type"`
	UserID       *string          `json:"user_id,omitempty"`       // optional owning user
	DepartmentID *string          `json:"department_id,omitempty"` // optional owning department
	Payload      json.RawMessage  `json:"payload"`
	Status       WebhookStatus    `json:"status"`
	RetryCount   int              `json:"retry_count"`
	MaxRetries   int              `json:"max_retries"`
	LastError    string           `json:"last_error,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	SentAt       *time.Time       `json:"sent_at,omitempty"`
}

// SweepResult aggregates the outcome of one pending-webhook sweep.
type SweepResult struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Retrying  int `json:"retrying"`
}
