// Package main is the scheduled reminder sweep Lambda. An EventBridge rule
// invokes it (hourly in production); each invocation runs one sweep, the
// same one POST /api/send-reminders triggers.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cfr_notifier/internal/config"
	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/infrastructure/app"
	"cfr_notifier/internal/infrastructure/logging"
	"cfr_notifier/internal/usecase"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
)

// SweepSummary is returned to the Lambda runtime and shows up in the
// invocation result.
type SweepSummary struct {
	RunID     string `json:"runId"`
	Processed int    `json:"processed"`
	Succeeded int    `json:"succeeded"`
	Partial   int    `json:"partial"`
	Failed    int    `json:"failed"`
}

type Handler struct {
	Notifications usecase.INotificationUseCase
	Logger        *slog.Logger
}

func (h *Handler) Handle(ctx context.Context, event events.CloudWatchEvent) (SweepSummary, error) {
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	summary := SweepSummary{RunID: uuid.NewString()}
	logger = logger.With("run_id", summary.RunID, "event_id", event.ID)
	logger.InfoContext(ctx, "[reminder][lambda] sweep started", "scheduled_at", event.Time)

	result, err := h.Notifications.SendReminders(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "[reminder][lambda] sweep failed", "error", err)
		return summary, fmt.Errorf("reminder sweep: %w", err)
	}

	for _, p := range result.Processed {
		switch p.Status {
		case entities.DeliveryStatusSuccess:
			summary.Succeeded++
		case entities.DeliveryStatusPartialSuccess:
			summary.Partial++
		default:
			summary.Failed++
		}
	}
	summary.Processed = len(result.Processed)

	logger.InfoContext(ctx, "[reminder][lambda] sweep finished",
		"processed", summary.Processed,
		"succeeded", summary.Succeeded,
		"partial", summary.Partial,
		"failed", summary.Failed,
	)
	return summary, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("[reminder][lambda] failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.Setup(cfg.LogLevel)

	c, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("[reminder][lambda] failed to build application", "error", err)
		os.Exit(1)
	}

	handler := &Handler{Notifications: c.Notifications, Logger: logger}
	lambda.Start(handler.Handle)
}
