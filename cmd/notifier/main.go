package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	notifhandler "github.com/finwellhq/notify-service/internal/api/handlers/notification"
	webhookhandler "github.com/finwellhq/notify-service/internal/api/handlers/webhook"
	"github.com/finwellhq/notify-service/internal/api/router"
	"github.com/finwellhq/notify-service/internal/api/server"
	"github.com/finwellhq/notify-service/internal/config"
	eventhandler "github.com/finwellhq/notify-service/internal/rabbitmq/handlers/event"
	"github.com/finwellhq/notify-service/internal/rabbitmq/queue"
	auditrepo "github.com/finwellhq/notify-service/internal/repository/audit"
	notifrepo "github.com/finwellhq/notify-service/internal/repository/notification"
	webhookrepo "github.com/finwellhq/notify-service/internal/repository/webhook"
	notifsvc "github.com/finwellhq/notify-service/internal/service/notification"
	webhooksvc "github.com/finwellhq/notify-service/internal/service/webhook"
	"github.com/finwellhq/notify-service/internal/worker"
	"github.com/finwellhq/notify-service/internal/ws"
	"github.com/finwellhq/notify-service/pkg/email"
	"github.com/finwellhq/notify-service/pkg/telegram"
	webhookclient "github.com/finwellhq/notify-service/pkg/webhook"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewEventQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create event queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))

	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	registry := ws.NewRegistry(auditrepo.NewRepository(db))
	go registry.RunHeartbeat(ctx, cfg.Heartbeat.Interval)

	notifService := notifsvc.NewService(notifrepo.NewRepository(db), registry, rdb)

	alertNotifiers := map[string]webhooksvc.AlertNotifier{
		"email": email.NewClient(
			cfg.Alerts.Email.SMTPHost,
			cfg.Alerts.Email.SMTPPort,
			cfg.Alerts.Email.Username,
			cfg.Alerts.Email.Password,
			cfg.Alerts.Email.From,
		),
		"telegram": telegram.NewClient(cfg.Alerts.Telegram.Token),
	}

	webhookService := webhooksvc.NewService(
		webhookrepo.NewRepository(db),
		webhookclient.NewClient(cfg.Webhooks.Timeout),
		alertNotifiers,
		cfg.Alerts.Recipients,
	)

	urls := webhooksvc.URLMapFrom(cfg.Webhooks.DefaultURL, cfg.Webhooks.Overrides)
	eventHandler := eventhandler.NewHandler(notifService, webhookService, urls)

	dispatcher := worker.NewDispatcher(q, eventHandler)

	go dispatcher.Run(ctx, cfg.Retry, cfg.Workers.Count)

	notifHandler := notifhandler.NewHandler(notifService, registry, val, cfg)
	webhookHandler := webhookhandler.NewHandler(webhookService, cfg)

	r := router.New(notifHandler, webhookHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	registry.Shutdown()

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
