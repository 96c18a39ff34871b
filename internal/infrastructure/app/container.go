// Package app wires configuration into the concrete adapters, use cases and
// handlers. Both the HTTP server and the reminder Lambda build one Container.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cfr_notifier/internal/adapter/http/handlers"
	"cfr_notifier/internal/adapter/persistence/repository"
	"cfr_notifier/internal/config"
	"cfr_notifier/internal/domain/carrier"
	"cfr_notifier/internal/infrastructure/carrierlookup"
	"cfr_notifier/internal/infrastructure/database"
	"cfr_notifier/internal/infrastructure/geocoding"
	"cfr_notifier/internal/infrastructure/httpclient"
	"cfr_notifier/internal/infrastructure/mail"
	"cfr_notifier/internal/infrastructure/metrics"
	"cfr_notifier/internal/usecase"
	"cfr_notifier/internal/usecase/interfaces"
)

type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	Notifications *usecase.NotificationUseCase
	Messaging     *usecase.MessagingUseCase
	Geocode       *usecase.GeocodeUseCase

	NotificationHandler *handlers.NotificationHandler
	MessagingHandler    *handlers.MessagingHandler
	GeocodeHandler      *handlers.GeocodeHandler
	ClientHandler       *handlers.ClientHandler
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	appointments := repository.NewAppointmentDynamoRepository(ddb, cfg.AWS.AppointmentsTable)
	logs := repository.NewLogDynamoRepository(ddb, cfg.AWS.LogsTable)

	sender, err := mail.NewSMTPSender(cfg.SMTP)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Delivery.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("app: invalid time zone %q: %w", cfg.Delivery.TimeZone, err)
	}
	renderer, err := usecase.NewTemplateRenderer(usecase.RendererConfig{
		Business: usecase.BusinessProfile{
			Name:    cfg.Business.Name,
			Email:   cfg.Business.Email,
			Phone:   cfg.Business.Phone,
			Website: cfg.Business.Website,
		},
		Location: loc,
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	m := metrics.New()
	retrier := usecase.NewRetrier(cfg.Delivery.MaxAttempts, cfg.Delivery.RetryDelay)
	attempter := usecase.NewDeliveryAttempter(sender, retrier, m)
	carriers := newCarrierResolver(cfg.CarrierLookup, logger)

	geocoderHTTP := httpclient.New(
		&http.Client{Timeout: cfg.Geocoding.Timeout},
		"geocoder",
		httpclient.DefaultRetryPolicy(),
		cfg.Geocoding.UserAgent,
	)
	geocoder := geocoding.NewNominatimGeocoder(geocoderHTTP, cfg.Geocoding)

	notifications := usecase.NewNotificationUseCase(usecase.NotificationDeps{
		Appointments:   appointments,
		Logs:           logs,
		Renderer:       renderer,
		Attempter:      attempter,
		Carriers:       carriers,
		Metrics:        m,
		SMSMaxLength:   cfg.Delivery.SMSMaxLength,
		ReminderWindow: cfg.Delivery.ReminderWindow,
	})
	messaging := usecase.NewMessagingUseCase(attempter, carriers, logs, cfg.Delivery.SMSMaxLength)
	geocode := usecase.NewGeocodeUseCase(geocoder)

	return &Container{
		Config:  cfg,
		Logger:  logger,
		Metrics: m,

		Notifications: notifications,
		Messaging:     messaging,
		Geocode:       geocode,

		NotificationHandler: handlers.NewNotificationHandler(notifications),
		MessagingHandler:    handlers.NewMessagingHandler(messaging),
		GeocodeHandler:      handlers.NewGeocodeHandler(geocode),
		ClientHandler:       handlers.NewClientHandler(cfg.Firebase, logger),
	}, nil
}

func newCarrierResolver(cfg config.CarrierLookupConfig, logger *slog.Logger) interfaces.ICarrierResolver {
	table := carrier.DefaultTable()
	if !cfg.Enabled {
		return carrier.NewStaticResolver(table)
	}

	logger.Info("[carrier][app] twilio lookup enabled", "base_url", cfg.BaseURL)
	client := httpclient.New(nil, "twilio-lookup", httpclient.DefaultRetryPolicy(), "")
	return carrierlookup.NewTwilioResolver(table, client, cfg)
}
