package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/finwellhq/notify-service/internal/api/dto"
	"github.com/finwellhq/notify-service/internal/api/respond"
	"github.com/finwellhq/notify-service/internal/config"
	"github.com/finwellhq/notify-service/internal/model"
	notifrepo "github.com/finwellhq/notify-service/internal/repository/notification"
	"github.com/finwellhq/notify-service/internal/ws"
)

// notificationService defines the interface that the Handler depends on.
//
// It abstracts the broadcaster and the read-side query operations.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	BroadcastToUsers(ctx context.Context, strategy retry.Strategy, userIDs []string, n model.Notification)
	GetHistory(ctx context.Context, userID string, limit int) ([]model.Notification, error)
	GetUnreadCount(ctx context.Context, strategy retry.Strategy, userID string) (int, error)
	MarkAsRead(ctx context.Context, strategy retry.Strategy, id uuid.UUID) error
	GetStats(ctx context.Context, userID string) (model.Stats, error)
	GetPreferences(ctx context.Context, strategy retry.Strategy, userID string) (model.Preferences, error)
	UpdatePreferences(ctx context.Context, strategy retry.Strategy, userID string, prefs model.Preferences) error
}

type connectionRegistry interface {
	Register(ctx context.Context, userID, connectionID string, ch ws.Channel)
	Unregister(ctx context.Context, connectionID string)
	CountAll() int
	CountForUser(userID string) int
}

// Handler handles the websocket endpoint and the notification query API.
type Handler struct {
	service   notificationService
	registry  connectionRegistry
	validator *validator.Validate
	cfg       *config.Config
	upgrader  websocket.Upgrader
}

// NewHandler creates a new Handler instance.
func NewHandler(
	s notificationService,
	r connectionRegistry,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{
		service:   s,
		registry:  r,
		validator: v,
		cfg:       cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin checks belong to the auth layer in front of this service.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// userID extracts the caller identity attached by the auth layer.
func userID(c *ginext.Context) string {
	return c.GetHeader("X-User-ID")
}

// ServeWS upgrades the request to a websocket connection and registers it
// for the calling user. The read loop exists only to observe pongs and the
// peer closing; all pushes go through the registered channel.
func (h *Handler) ServeWS(c *ginext.Context) {
	uid := userID(c)
	if uid == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user identity"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", uid).Msg("failed to upgrade connection")
		return
	}

	connectionID := uuid.New().String()
	channel := ws.NewWebsocketChannel(conn)

	h.registry.Register(c.Request.Context(), uid, connectionID, channel)

	go func() {
		// The connection outlives the HTTP request context.
		ctx := context.Background()
		defer func() {
			channel.MarkClosed()
			_ = conn.Close()
			h.registry.Unregister(ctx, connectionID)
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Publish handles the internal POST endpoint used by platform services to
// push a notification to one or more users.
func (h *Handler) Publish(c *ginext.Context) {
	var req dto.PublishRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	notifType := model.NotificationType(req.Type)
	if !notifType.Valid() {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("unknown notification type %q", req.Type))
		return
	}

	h.service.BroadcastToUsers(c.Request.Context(), h.cfg.Retry, req.UserIDs, model.Notification{
		Type:    notifType,
		Title:   req.Title,
		Message: req.Message,
		Data:    req.Data,
	})

	respond.Created(c.Writer, map[string]int{"recipients": len(req.UserIDs)})
}

// GetHistory returns the most recent page of the caller's notifications.
func (h *Handler) GetHistory(c *ginext.Context) {
	uid := userID(c)
	if uid == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user identity"))
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid limit"))
			return
		}
		limit = parsed
	}

	notifications, err := h.service.GetHistory(c.Request.Context(), uid, limit)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", uid).Msg("failed to get notification history")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// GetUnreadCount returns the caller's unread notification count.
func (h *Handler) GetUnreadCount(c *ginext.Context) {
	uid := userID(c)
	if uid == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user identity"))
		return
	}

	count, err := h.service.GetUnreadCount(c.Request.Context(), h.cfg.Retry, uid)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", uid).Msg("failed to get unread count")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]int{"unread": count})
}

// MarkAsRead marks one notification as read. Repeating the call for an
// already read notification succeeds without effect.
func (h *Handler) MarkAsRead(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), h.cfg.Retry, id); err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to mark notification as read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification marked as read")
}

// GetStats returns the caller's notification aggregate.
func (h *Handler) GetStats(c *ginext.Context) {
	uid := userID(c)
	if uid == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user identity"))
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), uid)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", uid).Msg("failed to get notification stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats)
}

// GetPreferences returns the caller's notification preferences.
func (h *Handler) GetPreferences(c *ginext.Context) {
	uid := userID(c)
	if uid == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user identity"))
		return
	}

	prefs, err := h.service.GetPreferences(c.Request.Context(), h.cfg.Retry, uid)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", uid).Msg("failed to get preferences")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, prefs)
}

// UpdatePreferences stores the caller's notification preferences.
func (h *Handler) UpdatePreferences(c *ginext.Context) {
	uid := userID(c)
	if uid == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user identity"))
		return
	}

	var req dto.PreferencesRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	prefs := model.Preferences{
		PushEnabled:    req.PushEnabled,
		EmailEnabled:   req.EmailEnabled,
		DigestsEnabled: req.DigestsEnabled,
	}

	if err := h.service.UpdatePreferences(c.Request.Context(), h.cfg.Retry, uid, prefs); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", uid).Msg("failed to update preferences")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, prefs)
}

// ConnectionStats returns registry diagnostics: total live connections and,
// when a user id is supplied, that user's connection count.
func (h *Handler) ConnectionStats(c *ginext.Context) {
	stats := map[string]int{"total": h.registry.CountAll()}

	if uid := userID(c); uid != "" {
		stats["user"] = h.registry.CountForUser(uid)
	}

	respond.OK(c.Writer, stats)
}
