package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/finwellhq/notify-service/internal/api/handlers/notification"
	"github.com/finwellhq/notify-service/internal/api/handlers/webhook"
)

func New(notifHandler *notification.Handler, webhookHandler *webhook.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/ws", notifHandler.ServeWS)

	api := e.Group("/api/notifications")

	api.POST("/", notifHandler.Publish)
	api.GET("/", notifHandler.GetHistory)
	api.GET("/unread-count", notifHandler.GetUnreadCount)
	api.PUT("/:id/read", notifHandler.MarkAsRead)
	api.GET("/stats", notifHandler.GetStats)
	api.GET("/preferences", notifHandler.GetPreferences)
	api.PUT("/preferences", notifHandler.UpdatePreferences)

	e.GET("/api/connections/stats", notifHandler.ConnectionStats)
	e.POST("/api/webhooks/process", webhookHandler.Process)

	return e
}
