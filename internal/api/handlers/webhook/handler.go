package webhook

import (
	"context"

	"github.com/wb-go/wbf/ginext"

	"github.com/finwellhq/notify-service/internal/api/respond"
	"github.com/finwellhq/notify-service/internal/config"
	"github.com/finwellhq/notify-service/internal/model"
	"github.com/finwellhq/notify-service/internal/service/webhook"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/webhook/mock.go -package=mocks
type webhookService interface {
	ProcessPendingWebhooks(ctx context.Context, urls webhook.URLMap) model.SweepResult
}

// Handler exposes the pending-webhook sweep to the external scheduler.
type Handler struct {
	service webhookService
	cfg     *config.Config
}

// NewHandler creates a new webhook handler.
func NewHandler(s webhookService, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

// Process runs one sweep over pending and retrying webhook events and
// returns the aggregate counts. It is meant to be invoked by a cron job, not
// self-scheduled: the retry cadence belongs to the scheduler.
func (h *Handler) Process(c *ginext.Context) {
	urls := webhook.URLMapFrom(h.cfg.Webhooks.DefaultURL, h.cfg.Webhooks.Overrides)

	result := h.service.ProcessPendingWebhooks(c.Request.Context(), urls)

	respond.OK(c.Writer, result)
}
