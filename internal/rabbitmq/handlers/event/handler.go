package event

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/finwellhq/notify-service/internal/model"
	"github.com/finwellhq/notify-service/internal/rabbitmq/queue"
	"github.com/finwellhq/notify-service/internal/service/webhook"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/event/mock.go -package=mocks

type broadcaster interface {
	NotifyTierUpgrade(ctx context.Context, strategy retry.Strategy, userID, newTier string, ewaRate float64) uuid.UUID
	NotifyMilestoneCompleted(ctx context.Context, strategy retry.Strategy, userID, milestone string, points int) uuid.UUID
	NotifyComplianceAlert(ctx context.Context, strategy retry.Strategy, userID, detail, severity string) uuid.UUID
	NotifyNewRecommendation(ctx context.Context, strategy retry.Strategy, userID, recommendationID, category string) uuid.UUID
	NotifyInterventionUpdate(ctx context.Context, strategy retry.Strategy, userID, intervention, status string) uuid.UUID
}

type webhookTrigger interface {
	TriggerRewardTierWebhook(ctx context.Context, urls webhook.URLMap, userID, fromTier, toTier string, points int, ewaRate float64) uuid.UUID
	TriggerRecommendationWebhook(ctx context.Context, urls webhook.URLMap, userID, recommendationID, category, title string) uuid.UUID
	TriggerInterventionWebhook(ctx context.Context, urls webhook.URLMap, userID, interventionID, name string, completed bool) uuid.UUID
	TriggerDepartmentMilestoneWebhook(ctx context.Context, urls webhook.URLMap, departmentID, milestone string, value float64) uuid.UUID
	LogWebhookEvent(ctx context.Context, eventType model.WebhookEventType, payload any, userID, departmentID *string) uuid.UUID
}

// Handler routes one consumed domain event to the broadcaster and the
// webhook pipeline. Unknown event types are logged and dropped.
type Handler struct {
	broadcaster broadcaster
	webhooks    webhookTrigger
	urls        webhook.URLMap
}

// NewHandler creates a domain event handler.
func NewHandler(b broadcaster, w webhookTrigger, urls webhook.URLMap) *Handler {
	return &Handler{broadcaster: b, webhooks: w, urls: urls}
}

// HandleMessage dispatches a single domain event.
func (h *Handler) HandleMessage(ctx context.Context, event queue.DomainEvent, strategy retry.Strategy) {
	switch event.Type {
	case string(model.WebhookRewardTierUpgrade):
		toTier := getString(event.Payload, "to_tier")
		rate := getFloat(event.Payload, "ewa_rate")
		h.broadcaster.NotifyTierUpgrade(ctx, strategy, event.UserID, toTier, rate)
		h.webhooks.TriggerRewardTierWebhook(
			ctx, h.urls, event.UserID,
			getString(event.Payload, "from_tier"), toTier,
			getInt(event.Payload, "points"), rate,
		)

	case string(model.WebhookNewRecommendation):
		recID := getString(event.Payload, "recommendation_id")
		category := getString(event.Payload, "category")
		h.broadcaster.NotifyNewRecommendation(ctx, strategy, event.UserID, recID, category)
		h.webhooks.TriggerRecommendationWebhook(
			ctx, h.urls, event.UserID, recID, category,
			getString(event.Payload, "title"),
		)

	case string(model.WebhookInterventionStarted), string(model.WebhookInterventionCompleted):
		completed := event.Type == string(model.WebhookInterventionCompleted)
		name := getString(event.Payload, "name")
		status := "started"
		if completed {
			status = "completed"
		}
		h.broadcaster.NotifyInterventionUpdate(ctx, strategy, event.UserID, name, status)
		h.webhooks.TriggerInterventionWebhook(
			ctx, h.urls, event.UserID,
			getString(event.Payload, "intervention_id"), name, completed,
		)

	case string(model.WebhookFWIMilestone):
		h.broadcaster.NotifyMilestoneCompleted(
			ctx, strategy, event.UserID,
			getString(event.Payload, "milestone"),
			getInt(event.Payload, "points"),
		)
		userID := event.UserID
		h.webhooks.LogWebhookEvent(ctx, model.WebhookFWIMilestone, event.Payload, &userID, nil)

	case string(model.WebhookEWARateImproved):
		userID := event.UserID
		h.webhooks.LogWebhookEvent(ctx, model.WebhookEWARateImproved, event.Payload, &userID, nil)

	case string(model.WebhookDepartmentMilestone):
		h.webhooks.TriggerDepartmentMilestoneWebhook(
			ctx, h.urls, event.DepartmentID,
			getString(event.Payload, "milestone"),
			getFloat(event.Payload, "value"),
		)

	case string(model.NotificationComplianceAlert):
		h.broadcaster.NotifyComplianceAlert(
			ctx, strategy, event.UserID,
			getString(event.Payload, "detail"),
			getString(event.Payload, "severity"),
		)

	default:
		zlog.Logger.Warn().Str("type", event.Type).Msg("unknown domain event type, dropping")
	}
}

func getString(payload map[string]any, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

func getInt(payload map[string]any, key string) int {
	switch v := payload[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func getFloat(payload map[string]any, key string) float64 {
	switch v := payload[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
