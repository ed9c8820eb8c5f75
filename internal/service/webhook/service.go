package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/finwellhq/notify-service/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/webhook/mock.go -package=mocks

type webhookRepository interface {
	CreateEvent(context.Context, model.WebhookEvent) (uuid.UUID, error)
	ClaimPendingEvents(ctx context.Context) ([]model.WebhookEvent, error)
	ClaimEvent(ctx context.Context, id uuid.UUID) (bool, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	MarkRetrying(ctx context.Context, id uuid.UUID, retryCount int, lastError string) error
	MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, lastError string) error
	GetEventByID(ctx context.Context, id uuid.UUID) (model.WebhookEvent, error)
}

type sender interface {
	Send(ctx context.Context, url, eventType string, payload []byte) error
}

// AlertNotifier raises an operator alert over one channel (email, telegram).
type AlertNotifier interface {
	Send(to string, msg string) error
}

// URLMap resolves the destination endpoint per event type, falling back to a
// default URL for event types without an override.
type URLMap struct {
	Default string
	ByEvent map[model.WebhookEventType]string
}

// Resolve returns the URL for an event type, or "" when nothing is configured.
func (m URLMap) Resolve(t model.WebhookEventType) string {
	if url, ok := m.ByEvent[t]; ok && url != "" {
		return url
	}
	return m.Default
}

// URLMapFrom builds a URLMap from the configured default URL and per-event
// overrides keyed by event type name.
func URLMapFrom(defaultURL string, overrides map[string]string) URLMap {
	m := URLMap{Default: defaultURL, ByEvent: make(map[model.WebhookEventType]string, len(overrides))}
	for eventType, url := range overrides {
		m.ByEvent[model.WebhookEventType(eventType)] = url
	}
	return m
}

// Service is the webhook delivery pipeline: durable event logging, one-shot
// delivery over the outbound transport, and a polled sweep with bounded
// retries and terminal failure classification.
type Service struct {
	repo      webhookRepository
	sender    sender
	notifiers map[string]AlertNotifier // alert channel name -> client
	alerts    map[string]string        // alert channel name -> recipient
}

// NewService creates a webhook delivery service. notifiers and alerts may be
// empty when operator alerting is not configured.
func NewService(repo webhookRepository, sender sender, notifiers map[string]AlertNotifier, alerts map[string]string) *Service {
	return &Service{repo: repo, sender: sender, notifiers: notifiers, alerts: alerts}
}

// LogWebhookEvent durably records a new pending event BEFORE any delivery is
// attempted, so a crash between logging and sending leaves a recoverable
// pending row. Returns the generated id, or uuid.Nil when persistence is
// unavailable (soft failure, logged).
func (s *Service) LogWebhookEvent(ctx context.Context, eventType model.WebhookEventType, payload any, userID, departmentID *string) uuid.UUID {
	raw, err := json.Marshal(payload)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("event_type", string(eventType)).Msg("failed to marshal webhook payload")
		return uuid.Nil
	}

	id, err := s.repo.CreateEvent(ctx, model.WebhookEvent{
		EventType:    eventType,
		UserID:       userID,
		DepartmentID: departmentID,
		Payload:      raw,
		MaxRetries:   model.DefaultMaxRetries,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("event_type", string(eventType)).Msg("failed to log webhook event")
		return uuid.Nil
	}

	return id
}

// SendWebhook issues exactly one outbound POST for an event. Retries are the
// caller's responsibility.
func (s *Service) SendWebhook(ctx context.Context, url string, event model.WebhookEvent) error {
	if err := s.sender.Send(ctx, url, string(event.EventType), event.Payload); err != nil {
		return fmt.Errorf("send webhook: %w", err)
	}

	return nil
}

// ProcessPendingWebhooks runs one sweep over all pending and retrying events.
//
// Events are claimed atomically first, so concurrent sweeps cannot
// double-send. Per event: an event type without a configured URL fails
// immediately without touching the retry counter; a delivery failure
// increments the counter and leaves the event retrying until retries are
// exhausted, at which point it is terminally failed. Errors never propagate
// to the caller; they are folded into the returned counts.
func (s *Service) ProcessPendingWebhooks(ctx context.Context, urls URLMap) model.SweepResult {
	events, err := s.repo.ClaimPendingEvents(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to claim pending webhook events")
		return model.SweepResult{}
	}

	var result model.SweepResult
	for _, event := range events {
		result.Processed++

		switch s.deliver(ctx, urls, event) {
		case outcomeSent:
			result.Succeeded++
		case outcomeRetrying:
			result.Retrying++
		case outcomeFailed:
			result.Failed++
		}
	}

	if result.Processed > 0 {
		zlog.Logger.Info().
			Int("processed", result.Processed).
			Int("succeeded", result.Succeeded).
			Int("failed", result.Failed).
			Int("retrying", result.Retrying).
			Msg("webhook sweep finished")
	}

	return result
}

type outcome int

const (
	outcomeSent outcome = iota
	outcomeRetrying
	outcomeFailed
)

// deliver attempts one delivery for a claimed event and resolves its status.
func (s *Service) deliver(ctx context.Context, urls URLMap, event model.WebhookEvent) outcome {
	url := urls.Resolve(event.EventType)
	if url == "" {
		// Missing configuration is terminal: there is nothing a retry
		// could change, so the retry counter stays untouched.
		s.markFailed(ctx, event, event.RetryCount, "no webhook URL configured")
		return outcomeFailed
	}

	err := s.SendWebhook(ctx, url, event)
	if err == nil {
		if repoErr := s.repo.MarkSent(ctx, event.ID); repoErr != nil {
			zlog.Logger.Error().Err(repoErr).Str("event_id", event.ID.String()).Msg("failed to mark webhook event sent")
		}
		return outcomeSent
	}

	retryCount := event.RetryCount + 1
	if retryCount >= event.MaxRetries {
		s.markFailed(ctx, event, retryCount, err.Error())
		return outcomeFailed
	}

	if repoErr := s.repo.MarkRetrying(ctx, event.ID, retryCount, err.Error()); repoErr != nil {
		zlog.Logger.Error().Err(repoErr).Str("event_id", event.ID.String()).Msg("failed to mark webhook event retrying")
	}

	return outcomeRetrying
}

// markFailed records the terminal failure and raises operator alerts.
func (s *Service) markFailed(ctx context.Context, event model.WebhookEvent, retryCount int, lastError string) {
	if err := s.repo.MarkFailed(ctx, event.ID, retryCount, lastError); err != nil {
		zlog.Logger.Error().Err(err).Str("event_id", event.ID.String()).Msg("failed to mark webhook event failed")
	}

	zlog.Logger.Error().
		Str("event_id", event.ID.String()).
		Str("event_type", string(event.EventType)).
		Str("last_error", lastError).
		Msg("webhook event failed terminally")

	msg := fmt.Sprintf(
		"webhook event %s (%s) failed after %d attempts: %s",
		event.ID, event.EventType, retryCount, lastError,
	)

	for channel, to := range s.alerts {
		notifier, ok := s.notifiers[channel]
		if !ok {
			continue
		}
		if err := notifier.Send(to, msg); err != nil {
			zlog.Logger.Warn().Err(err).Str("channel", channel).Msg("failed to send webhook failure alert")
		}
	}
}

// attemptImmediate is the first-attempt fast path used by the typed triggers:
// it claims the freshly logged event and tries one synchronous delivery
// instead of letting the event wait for the next sweep.
func (s *Service) attemptImmediate(ctx context.Context, urls URLMap, id uuid.UUID) {
	if id == uuid.Nil {
		return
	}

	claimed, err := s.repo.ClaimEvent(ctx, id)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("event_id", id.String()).Msg("failed to claim webhook event")
		return
	}
	if !claimed {
		return
	}

	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("event_id", id.String()).Msg("failed to load webhook event")
		return
	}

	s.deliver(ctx, urls, event)
}

// RewardTierPayload is the canonical payload of a reward_tier_upgrade event.
type RewardTierPayload struct {
	UserID    string    `json:"user_id"`
	FromTier  string    `json:"from_tier"`
	ToTier    string    `json:"to_tier"`
	Points    int       `json:"points"`
	EWARate   float64   `json:"ewa_rate"`
	Timestamp time.Time `json:"timestamp"`
}

// TriggerRewardTierWebhook logs a reward tier upgrade event and attempts one
// immediate delivery.
func (s *Service) TriggerRewardTierWebhook(ctx context.Context, urls URLMap, userID, fromTier, toTier string, points int, ewaRate float64) uuid.UUID {
	id := s.LogWebhookEvent(ctx, model.WebhookRewardTierUpgrade, RewardTierPayload{
		UserID:    userID,
		FromTier:  fromTier,
		ToTier:    toTier,
		Points:    points,
		EWARate:   ewaRate,
		Timestamp: time.Now().UTC(),
	}, &userID, nil)

	s.attemptImmediate(ctx, urls, id)

	return id
}

// RecommendationPayload is the canonical payload of a new_recommendation event.
type RecommendationPayload struct {
	UserID           string    `json:"user_id"`
	RecommendationID string    `json:"recommendation_id"`
	Category         string    `json:"category"`
	Title            string    `json:"title"`
	Timestamp        time.Time `json:"timestamp"`
}

// TriggerRecommendationWebhook logs a new recommendation event and attempts
// one immediate delivery.
func (s *Service) TriggerRecommendationWebhook(ctx context.Context, urls URLMap, userID, recommendationID, category, title string) uuid.UUID {
	id := s.LogWebhookEvent(ctx, model.WebhookNewRecommendation, RecommendationPayload{
		UserID:           userID,
		RecommendationID: recommendationID,
		Category:         category,
		Title:            title,
		Timestamp:        time.Now().UTC(),
	}, &userID, nil)

	s.attemptImmediate(ctx, urls, id)

	return id
}

// InterventionPayload is the canonical payload of intervention lifecycle events.
type InterventionPayload struct {
	UserID         string    `json:"user_id"`
	InterventionID string    `json:"intervention_id"`
	Name           string    `json:"name"`
	Completed      bool      `json:"completed"`
	Timestamp      time.Time `json:"timestamp"`
}

// TriggerInterventionWebhook logs an intervention started or completed event
// and attempts one immediate delivery.
func (s *Service) TriggerInterventionWebhook(ctx context.Context, urls URLMap, userID, interventionID, name string, completed bool) uuid.UUID {
	eventType := model.WebhookInterventionStarted
	if completed {
		eventType = model.WebhookInterventionCompleted
	}

	id := s.LogWebhookEvent(ctx, eventType, InterventionPayload{
		UserID:         userID,
		InterventionID: interventionID,
		Name:           name,
		Completed:      completed,
		Timestamp:      time.Now().UTC(),
	}, &userID, nil)

	s.attemptImmediate(ctx, urls, id)

	return id
}

// DepartmentMilestonePayload is the canonical payload of a
// department_milestone event.
type DepartmentMilestonePayload struct {
	DepartmentID string    `json:"department_id"`
	Milestone    string    `json:"milestone"`
	Value        float64   `json:"value"`
	Timestamp    time.Time `json:"timestamp"`
}

// TriggerDepartmentMilestoneWebhook logs a department milestone event and
// attempts one immediate delivery.
func (s *Service) TriggerDepartmentMilestoneWebhook(ctx context.Context, urls URLMap, departmentID, milestone string, value float64) uuid.UUID {
	id := s.LogWebhookEvent(ctx, model.WebhookDepartmentMilestone, DepartmentMilestonePayload{
		DepartmentID: departmentID,
		Milestone:    milestone,
		Value:        value,
		Timestamp:    time.Now().UTC(),
	}, nil, &departmentID)

	s.attemptImmediate(ctx, urls, id)

	return id
}
