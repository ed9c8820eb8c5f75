package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/finwellhq/notify-service/internal/model"
	"github.com/finwellhq/notify-service/internal/ws"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	CreateNotification(context.Context, model.Notification) (uuid.UUID, error)
	GetNotificationsByUser(ctx context.Context, userID string, limit int) ([]model.Notification, error)
	GetUnreadCount(ctx context.Context, userID string) (int, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	GetNotificationByID(ctx context.Context, id uuid.UUID) (model.Notification, error)
}

type connectionRegistry interface {
	ChannelsFor(userID string) []ws.Channel
	AllChannels() []ws.Channel
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// wirePayload is the serialized shape pushed over a live channel. Clients
// depend on this exact layout.
type wirePayload struct {
	Type      model.NotificationType `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]any         `json:"data,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

// Service fans notifications out to live channels and durably queues every
// targeted notification for offline retrieval. It also serves the read side:
// history, unread counts, stats and preferences.
type Service struct {
	repo     notificationRepository
	registry connectionRegistry
	cache    cache
}

// NewService creates a notification service.
func NewService(repo notificationRepository, registry connectionRegistry, cache cache) *Service {
	return &Service{repo: repo, registry: registry, cache: cache}
}

// NotifyUser pushes a notification to every live channel of userID and
// persists it regardless of delivery outcome, so a disconnected user sees it
// on next login.
//
// Channel send failures are swallowed per connection; a failed persistence
// write is logged and yields a nil id rather than an error, favoring
// availability of the push path over strict consistency.
func (s *Service) NotifyUser(ctx context.Context, strategy retry.Strategy, userID string, n model.Notification) uuid.UUID {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	n.UserID = userID

	payload, err := json.Marshal(wirePayload{
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		Timestamp: n.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to serialize notification")
		return uuid.Nil
	}

	for _, ch := range s.registry.ChannelsFor(userID) {
		if !ch.IsOpen() {
			continue
		}
		if err := ch.Send(payload); err != nil {
			zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("failed to push notification to channel")
		}
	}

	id, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to persist notification")
		return uuid.Nil
	}

	s.refreshUnreadCache(ctx, strategy, userID)

	return id
}

// BroadcastToUsers applies NotifyUser sequentially per user. A failure for
// one user never blocks delivery to the others.
func (s *Service) BroadcastToUsers(ctx context.Context, strategy retry.Strategy, userIDs []string, n model.Notification) {
	for _, userID := range userIDs {
		s.NotifyUser(ctx, strategy, userID, n)
	}
}

// BroadcastToAll sends to every currently registered channel. Untargeted
// broadcasts are transient and deliberately NOT persisted into per-user
// history.
func (s *Service) BroadcastToAll(n model.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(wirePayload{
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		Timestamp: n.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to serialize broadcast")
		return
	}

	for _, ch := range s.registry.AllChannels() {
		if !ch.IsOpen() {
			continue
		}
		if err := ch.Send(payload); err != nil {
			zlog.Logger.Warn().Err(err).Msg("failed to push broadcast to channel")
		}
	}
}

// NotifyTierUpgrade notifies a user that their reward tier changed. This is
// the only construction site for tier_upgrade notifications.
func (s *Service) NotifyTierUpgrade(ctx context.Context, strategy retry.Strategy, userID, newTier string, ewaRate float64) uuid.UUID {
	return s.NotifyUser(ctx, strategy, userID, model.Notification{
		Type:    model.NotificationTierUpgrade,
		Title:   "Reward tier upgraded",
		Message: fmt.Sprintf("Congratulations! You've reached the %s tier.", newTier),
		Data: map[string]any{
			"tier":     newTier,
			"ewa_rate": ewaRate,
		},
	})
}

// NotifyMilestoneCompleted notifies a user about a completed wellness milestone.
func (s *Service) NotifyMilestoneCompleted(ctx context.Context, strategy retry.Strategy, userID, milestone string, points int) uuid.UUID {
	return s.NotifyUser(ctx, strategy, userID, model.Notification{
		Type:    model.NotificationMilestone,
		Title:   "Milestone completed",
		Message: fmt.Sprintf("You completed %q and earned %d points.", milestone, points),
		Data: map[string]any{
			"milestone": milestone,
			"points":    points,
		},
	})
}

// NotifyComplianceAlert notifies a user about a compliance issue requiring
// attention.
func (s *Service) NotifyComplianceAlert(ctx context.Context, strategy retry.Strategy, userID, detail, severity string) uuid.UUID {
	return s.NotifyUser(ctx, strategy, userID, model.Notification{
		Type:    model.NotificationComplianceAlert,
		Title:   "Compliance alert",
		Message: detail,
		Data: map[string]any{
			"severity": severity,
		},
	})
}

// NotifyNewRecommendation notifies a user that a new recommendation is ready.
func (s *Service) NotifyNewRecommendation(ctx context.Context, strategy retry.Strategy, userID, recommendationID, category string) uuid.UUID {
	return s.NotifyUser(ctx, strategy, userID, model.Notification{
		Type:    model.NotificationRecommendation,
		Title:   "New recommendation",
		Message: fmt.Sprintf("A new %s recommendation is waiting for you.", category),
		Data: map[string]any{
			"recommendation_id": recommendationID,
			"category":          category,
		},
	})
}

// NotifyInterventionUpdate notifies a user that an intervention they take
// part in changed state.
func (s *Service) NotifyInterventionUpdate(ctx context.Context, strategy retry.Strategy, userID, intervention, status string) uuid.UUID {
	return s.NotifyUser(ctx, strategy, userID, model.Notification{
		Type:    model.NotificationInterventionUpdate,
		Title:   "Intervention update",
		Message: fmt.Sprintf("Intervention %q is now %s.", intervention, status),
		Data: map[string]any{
			"intervention": intervention,
			"status":       status,
		},
	})
}

// GetHistory returns the most recent page of a user's notifications, capped
// at 100 entries.
func (s *Service) GetHistory(ctx context.Context, userID string, limit int) ([]model.Notification, error) {
	notifications, err := s.repo.GetNotificationsByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get notification history: %w", err)
	}

	return notifications, nil
}

// GetUnreadCount returns the number of unread notifications, serving from the
// Redis cache when possible.
func (s *Service) GetUnreadCount(ctx context.Context, strategy retry.Strategy, userID string) (int, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, unreadKey(userID))
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("failed to get unread count from cache")
	}
	if err == nil {
		if count, convErr := strconv.Atoi(cached); convErr == nil {
			return count, nil
		}
	}

	count, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get unread count: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, unreadKey(userID), strconv.Itoa(count)); err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("failed to cache unread count")
	}

	return count, nil
}

// MarkAsRead stamps the read timestamp of a notification. Marking twice is
// idempotent: the second call keeps the original timestamp and succeeds.
func (s *Service) MarkAsRead(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("mark notification as read: %w", err)
	}

	if err := s.repo.MarkAsRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification as read: %w", err)
	}

	s.refreshUnreadCache(ctx, strategy, n.UserID)

	return nil
}

// GetStats folds the most recent history page into an aggregate. Stats
// beyond the page window are approximate by design.
func (s *Service) GetStats(ctx context.Context, userID string) (model.Stats, error) {
	notifications, err := s.repo.GetNotificationsByUser(ctx, userID, 100)
	if err != nil {
		return model.Stats{}, fmt.Errorf("get notification stats: %w", err)
	}

	stats := model.Stats{ByType: make(map[model.NotificationType]int)}
	for _, n := range notifications {
		stats.Total++
		if !n.Read() {
			stats.Unread++
		}
		stats.ByType[n.Type]++
		if stats.MostRecent == nil || n.CreatedAt.After(*stats.MostRecent) {
			t := n.CreatedAt
			stats.MostRecent = &t
		}
	}

	return stats, nil
}

// GetPreferences loads a user's notification preferences from Redis, falling
// back to defaults when none were ever saved.
func (s *Service) GetPreferences(ctx context.Context, strategy retry.Strategy, userID string) (model.Preferences, error) {
	raw, err := s.cache.GetWithRetry(ctx, strategy, prefsKey(userID))
	if errors.Is(err, redis.Nil) {
		return model.DefaultPreferences(), nil
	}
	if err != nil {
		return model.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}

	var prefs model.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return model.Preferences{}, fmt.Errorf("decode preferences: %w", err)
	}

	return prefs, nil
}

// UpdatePreferences stores a user's notification preferences in Redis.
func (s *Service) UpdatePreferences(ctx context.Context, strategy retry.Strategy, userID string, prefs model.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, prefsKey(userID), string(raw)); err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}

	return nil
}

// refreshUnreadCache writes the current unread count through to Redis so
// cached reads stay close to the database without needing invalidation.
func (s *Service) refreshUnreadCache(ctx context.Context, strategy retry.Strategy, userID string) {
	count, err := s.repo.GetUnreadCount(ctx, userID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("failed to refresh unread count")
		return
	}

	if err := s.cache.SetWithRetry(ctx, strategy, unreadKey(userID), strconv.Itoa(count)); err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("failed to cache unread count")
	}
}

func unreadKey(userID string) string {
	return "notifications:unread:" + userID
}

func prefsKey(userID string) string {
	return "notifications:prefs:" + userID
}
