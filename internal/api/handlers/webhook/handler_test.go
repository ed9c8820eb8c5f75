package webhook

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/finwellhq/notify-service/internal/config"
	mocks "github.com/finwellhq/notify-service/internal/mocks/api/handlers/webhook"
	"github.com/finwellhq/notify-service/internal/model"
	webhooksvc "github.com/finwellhq/notify-service/internal/service/webhook"
)

func TestHandler_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockwebhookService(ctrl)
	cfg := &config.Config{}
	cfg.Webhooks.DefaultURL = "https://hooks.example.com"
	cfg.Webhooks.Overrides = map[string]string{
		"reward_tier_upgrade": "https://tiers.example.com",
	}

	handler := NewHandler(serviceMock, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/process", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	serviceMock.EXPECT().
		ProcessPendingWebhooks(gomock.Any(), webhooksvc.URLMap{
			Default: "https://hooks.example.com",
			ByEvent: map[model.WebhookEventType]string{
				model.WebhookRewardTierUpgrade: "https://tiers.example.com",
			},
		}).
		Return(model.SweepResult{Processed: 3, Succeeded: 2, Retrying: 1})

	handler.Process(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"processed":3`)
	assert.Contains(t, w.Body.String(), `"succeeded":2`)
}

func TestHandler_Process_EmptySweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockwebhookService(ctrl)
	handler := NewHandler(serviceMock, &config.Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/process", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	serviceMock.EXPECT().
		ProcessPendingWebhooks(gomock.Any(), gomock.Any()).
		Return(model.SweepResult{})

	handler.Process(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
