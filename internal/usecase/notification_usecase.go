package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cfr_notifier/internal/domain/carrier"
	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidAppointmentID    = errors.New("invalid appointment id")
	ErrInvalidNotificationType = errors.New("invalid notification type")
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrNoContactInfo           = errors.New("no contact info available")
)

const (
	DefaultReminderWindow = 24 * time.Hour

	workflowConfirmation = "confirmation"
	workflowReminder     = "reminder"
)

// ConfirmationResult is what one confirmation/status-update run produced.
type ConfirmationResult struct {
	AppointmentID string
	Status        entities.DeliveryStatus
	Email         entities.ChannelOutcome
	SMS           entities.ChannelOutcome
	Warnings      []string
}

type ReminderOutcome struct {
	AppointmentID string
	EmailSent     bool
	SMSSent       bool
	Status        entities.DeliveryStatus
}

// ReminderSweepResult lists every appointment the sweep processed. An empty
// list means nothing was due.
type ReminderSweepResult struct {
	Processed []ReminderOutcome
}

// INotificationUseCase exposes the appointment notification workflows.
//
//   - POST /api/send-confirmation => SendConfirmation()
//   - POST /api/send-reminders and the scheduled sweeper => SendReminders()

type INotificationUseCase interface {
	SendConfirmation(ctx context.Context, appointmentID string, notificationType entities.NotificationType) (ConfirmationResult, error)
	SendReminders(ctx context.Context) (ReminderSweepResult, error)
}

// NotificationDeps holds the collaborators of NotificationUseCase.
type NotificationDeps struct {
	Appointments interfaces.IAppointmentRepository
	Logs         interfaces.ILogRepository
	Renderer     *TemplateRenderer
	Attempter    *DeliveryAttempter
	Carriers     interfaces.ICarrierResolver
	Metrics      interfaces.IDeliveryMetrics
	Clock        Clock

	SMSMaxLength   int
	ReminderWindow time.Duration
}

type NotificationUseCase struct {
	appointments interfaces.IAppointmentRepository
	logs         interfaces.ILogRepository
	renderer     *TemplateRenderer
	attempter    *DeliveryAttempter
	carriers     interfaces.ICarrierResolver
	metrics      interfaces.IDeliveryMetrics
	clock        Clock

	smsMaxLength   int
	reminderWindow time.Duration

	inflight singleflight.Group
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(deps NotificationDeps) *NotificationUseCase {
	u := &NotificationUseCase{
		appointments:   deps.Appointments,
		logs:           deps.Logs,
		renderer:       deps.Renderer,
		attempter:      deps.Attempter,
		carriers:       deps.Carriers,
		metrics:        deps.Metrics,
		clock:          deps.Clock,
		smsMaxLength:   deps.SMSMaxLength,
		reminderWindow: deps.ReminderWindow,
	}
	if u.metrics == nil {
		u.metrics = noopMetrics{}
	}
	if u.clock == nil {
		u.clock = RealClock{}
	}
	if u.smsMaxLength <= 0 {
		u.smsMaxLength = DefaultSMSMaxSize
	}
	if u.reminderWindow <= 0 {
		u.reminderWindow = DefaultReminderWindow
	}
	return u
}

// SendConfirmation runs the confirmation (or status update) workflow for one
// appointment. Channel failures are recorded in the result, never returned.
// Concurrent calls for the same appointment and type share a single run.
func (u *NotificationUseCase) SendConfirmation(ctx context.Context, appointmentID string, notificationType entities.NotificationType) (ConfirmationResult, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if appointmentID == "" {
		return ConfirmationResult{}, ErrInvalidAppointmentID
	}
	if !notificationType.IsRequestable() {
		return ConfirmationResult{}, ErrInvalidNotificationType
	}

	key := appointmentID + "|" + string(notificationType)
	v, err, shared := u.inflight.Do(key, func() (any, error) {
		return u.confirm(ctx, appointmentID, notificationType)
	})
	if shared {
		slog.InfoContext(ctx, "[notification][usecase] joined in-flight confirmation", "appointment_id", appointmentID, "type", notificationType)
	}
	if err != nil {
		return ConfirmationResult{}, err
	}
	return v.(ConfirmationResult), nil
}

func (u *NotificationUseCase) confirm(ctx context.Context, appointmentID string, notificationType entities.NotificationType) (ConfirmationResult, error) {
	appt, err := u.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return ConfirmationResult{}, fmt.Errorf("load appointment %s: %w", appointmentID, err)
	}
	if appt.ID == "" {
		return ConfirmationResult{}, ErrAppointmentNotFound
	}
	if !appt.HasContact() {
		return ConfirmationResult{}, ErrNoContactInfo
	}

	msg, err := u.renderer.Render(appt, notificationType)
	if err != nil {
		return ConfirmationResult{}, err
	}

	delivery, warnings := u.deliver(ctx, appt, msg)
	status := delivery.Status()

	var oversized string
	if delivery.SMS.Attempted() {
		if n := SMSLength(msg.SMSBody); n > u.smsMaxLength {
			oversized = fmt.Sprintf("SMS body is %d characters; carriers may split or cut messages longer than %d.", n, u.smsMaxLength)
			warnings = append(warnings, oversized)
		}
	}

	now := u.clock.Now().UTC()
	err = u.appointments.UpdateDelivery(ctx, appt.ID, entities.DeliveryUpdate{
		ConfirmationSent:   true,
		ConfirmationSentAt: now,
		LastStatusSent:     notificationType,
		LastAttemptStatus:  status,
		NeedsResend:        false,
	})
	if err != nil {
		return ConfirmationResult{}, fmt.Errorf("update delivery bookkeeping: %w", err)
	}

	if _, err := u.logs.Append(ctx, entities.LogEntry{
		ID:            uuid.NewString(),
		Type:          entities.LogTypeConfirmation,
		AppointmentID: appt.ID,
		EmailSent:     delivery.Email.Succeeded(),
		SMSSent:       delivery.SMS.Succeeded(),
		Status:        status,
		SMSError:      smsError(delivery.SMS),
		Timestamp:     now,
	}); err != nil {
		return ConfirmationResult{}, fmt.Errorf("append confirmation log: %w", err)
	}

	if oversized != "" {
		if _, err := u.logs.Append(ctx, entities.LogEntry{
			ID:            uuid.NewString(),
			Type:          entities.LogTypeWarning,
			AppointmentID: appt.ID,
			Message:       oversized,
			Timestamp:     now,
		}); err != nil {
			return ConfirmationResult{}, fmt.Errorf("append warning log: %w", err)
		}
	}

	u.metrics.ObserveRun(workflowConfirmation, string(status))
	slog.InfoContext(ctx, "[notification][usecase] confirmation processed",
		"appointment_id", appt.ID, "type", notificationType, "status", status,
		"email", delivery.Email.Kind.String(), "sms", delivery.SMS.Kind.String())

	return ConfirmationResult{
		AppointmentID: appt.ID,
		Status:        status,
		Email:         delivery.Email,
		SMS:           delivery.SMS,
		Warnings:      warnings,
	}, nil
}

// SendReminders notifies every appointment due inside the reminder window
// that has reminders enabled and has not been reminded yet. Records are
// handled one at a time; a store failure aborts the sweep.
func (u *NotificationUseCase) SendReminders(ctx context.Context) (ReminderSweepResult, error) {
	now := u.clock.Now().UTC()
	end := now.Add(u.reminderWindow)
	due, err := u.appointments.ListDueForReminder(ctx, now, end)
	if err != nil {
		return ReminderSweepResult{}, fmt.Errorf("list reminder candidates: %w", err)
	}

	result := ReminderSweepResult{Processed: make([]ReminderOutcome, 0, len(due))}
	for _, appt := range due {
		if !appt.ReminderEnabled || appt.ReminderSent || !appt.StartsWithin(now, end) {
			continue
		}
		outcome, err := u.remind(ctx, appt)
		if err != nil {
			return result, err
		}
		result.Processed = append(result.Processed, outcome)
	}

	slog.InfoContext(ctx, "[notification][usecase] reminder sweep finished", "candidates", len(due), "processed", len(result.Processed))
	return result, nil
}

func (u *NotificationUseCase) remind(ctx context.Context, appt entities.Appointment) (ReminderOutcome, error) {
	msg, err := u.renderer.Render(appt, entities.NotificationReminder)
	if err != nil {
		return ReminderOutcome{}, err
	}

	delivery, _ := u.deliver(ctx, appt, msg)
	status := delivery.Status()
	now := u.clock.Now().UTC()

	if err := u.appointments.MarkReminderSent(ctx, appt.ID, entities.ReminderUpdate{
		ReminderSentAt:    now,
		LastAttemptStatus: status,
	}); err != nil {
		return ReminderOutcome{}, fmt.Errorf("mark reminder sent for %s: %w", appt.ID, err)
	}

	if _, err := u.logs.Append(ctx, entities.LogEntry{
		ID:            uuid.NewString(),
		Type:          entities.LogTypeReminder,
		AppointmentID: appt.ID,
		EmailSent:     delivery.Email.Succeeded(),
		SMSSent:       delivery.SMS.Succeeded(),
		Status:        status,
		SMSError:      smsError(delivery.SMS),
		Timestamp:     now,
	}); err != nil {
		return ReminderOutcome{}, fmt.Errorf("append reminder log: %w", err)
	}

	u.metrics.ObserveRun(workflowReminder, string(status))
	return ReminderOutcome{
		AppointmentID: appt.ID,
		EmailSent:     delivery.Email.Succeeded(),
		SMSSent:       delivery.SMS.Succeeded(),
		Status:        status,
	}, nil
}

// deliver sends email first, then SMS. Warnings collect every skip or
// failure reason in channel order.
func (u *NotificationUseCase) deliver(ctx context.Context, appt entities.Appointment, msg RenderedMessage) (entities.DeliveryResult, []string) {
	result := entities.DeliveryResult{Email: entities.NotAttempted(), SMS: entities.NotAttempted()}
	var warnings []string

	if appt.HasEmail() {
		result.Email = u.attempter.SendEmail(ctx, strings.TrimSpace(appt.Email), msg.Subject, msg.EmailBody, "")
		if !result.Email.Succeeded() {
			warnings = append(warnings, "Email delivery failed: "+result.Email.Reason)
		}
	}

	if appt.HasPhone() {
		result.SMS = u.sendSMS(ctx, appt, msg.SMSBody)
		if !result.SMS.Succeeded() {
			if result.SMS.Kind == entities.OutcomeFailed {
				warnings = append(warnings, "SMS delivery failed: "+result.SMS.Reason)
			} else {
				warnings = append(warnings, result.SMS.Reason)
			}
		}
	}

	return result, warnings
}

func (u *NotificationUseCase) sendSMS(ctx context.Context, appt entities.Appointment, body string) entities.ChannelOutcome {
	if carrier.DigitsOnly(appt.Phone) == "" {
		return u.skipSMS(ctx, appt, entities.Skipped("Phone number has no digits - skipping SMS."))
	}

	gateway, err := u.carriers.Resolve(ctx, appt.Carrier, appt.Phone)
	if err != nil {
		var outcome entities.ChannelOutcome
		switch {
		case errors.Is(err, carrier.ErrCarrierNotProvided):
			outcome = entities.Skipped("Carrier unknown or not selected - skipping SMS.")
		case errors.Is(err, carrier.ErrUnsupportedCarrier):
			outcome = entities.Skipped(fmt.Sprintf("Unsupported carrier %q - skipping SMS.", strings.TrimSpace(appt.Carrier)))
		default:
			outcome = entities.Skipped("Carrier lookup failed - skipping SMS: " + err.Error())
		}
		return u.skipSMS(ctx, appt, outcome)
	}
	return u.attempter.SendSMS(ctx, carrier.Address(appt.Phone, gateway), body)
}

func (u *NotificationUseCase) skipSMS(ctx context.Context, appt entities.Appointment, outcome entities.ChannelOutcome) entities.ChannelOutcome {
	slog.WarnContext(ctx, "[notification][usecase] sms skipped", "appointment_id", appt.ID, "carrier", appt.Carrier, "reason", outcome.Reason)
	u.metrics.ObserveChannel(ChannelSMS, outcome.Kind.String())
	return outcome
}

func smsError(o entities.ChannelOutcome) *string {
	if o.Kind != entities.OutcomeFailed && o.Kind != entities.OutcomeSkipped {
		return nil
	}
	reason := o.Reason
	return &reason
}
