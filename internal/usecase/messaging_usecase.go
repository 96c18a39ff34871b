package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"cfr_notifier/internal/domain/carrier"
	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingFields      = errors.New("missing fields")
	ErrUnsupportedCarrier = errors.New("unsupported carrier")
	ErrDeliveryFailed     = errors.New("delivery failed")
)

// IMessagingUseCase exposes the raw relays used by the admin front-end.
//
//   - POST /api/send-email => SendEmail()
//   - POST /api/send-sms   => SendSMS()

type IMessagingUseCase interface {
	SendEmail(ctx context.Context, recipient, subject, body string) error
	SendSMS(ctx context.Context, phoneNumber, carrierKey, message string) error
	SupportedCarriers() []string
}

type MessagingUseCase struct {
	attempter    *DeliveryAttempter
	carriers     interfaces.ICarrierResolver
	logs         interfaces.ILogRepository
	smsMaxLength int
}

var _ IMessagingUseCase = (*MessagingUseCase)(nil)

func NewMessagingUseCase(attempter *DeliveryAttempter, carriers interfaces.ICarrierResolver, logs interfaces.ILogRepository, smsMaxLength int) *MessagingUseCase {
	if smsMaxLength <= 0 {
		smsMaxLength = DefaultSMSMaxSize
	}
	return &MessagingUseCase{attempter: attempter, carriers: carriers, logs: logs, smsMaxLength: smsMaxLength}
}

// SendEmail relays a free-form email. The HTML part wraps the escaped body
// in a single div.
func (u *MessagingUseCase) SendEmail(ctx context.Context, recipient, subject, body string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" || strings.TrimSpace(subject) == "" || strings.TrimSpace(body) == "" {
		return ErrMissingFields
	}

	outcome := u.attempter.SendEmail(ctx, recipient, subject, body, "<div>"+html.EscapeString(body)+"</div>")
	if !outcome.Succeeded() {
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, outcome.Reason)
	}
	return nil
}

// SendSMS relays a free-form text through the carrier's email-to-SMS
// gateway. The phone is reduced to digits and the text cut to the SMS limit.
func (u *MessagingUseCase) SendSMS(ctx context.Context, phoneNumber, carrierKey, message string) error {
	if carrier.DigitsOnly(phoneNumber) == "" || strings.TrimSpace(carrierKey) == "" || strings.TrimSpace(message) == "" {
		return ErrMissingFields
	}

	gateway, err := u.carriers.Resolve(ctx, carrierKey, phoneNumber)
	if err != nil {
		if errors.Is(err, carrier.ErrCarrierNotProvided) || errors.Is(err, carrier.ErrUnsupportedCarrier) {
			return fmt.Errorf("%w: %q", ErrUnsupportedCarrier, carrierKey)
		}
		return err
	}

	outcome := u.attempter.SendSMS(ctx, carrier.Address(phoneNumber, gateway), TruncateSMS(message, u.smsMaxLength))
	u.appendLog(ctx, outcome)
	if !outcome.Succeeded() {
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, outcome.Reason)
	}
	return nil
}

func (u *MessagingUseCase) SupportedCarriers() []string {
	return u.carriers.Supported()
}

// appendLog records the relay in the audit log. A log failure never turns a
// delivered SMS into an error.
func (u *MessagingUseCase) appendLog(ctx context.Context, outcome entities.ChannelOutcome) {
	if u.logs == nil {
		return
	}
	status := entities.Classify(outcome)
	_, err := u.logs.Append(ctx, entities.LogEntry{
		ID:        uuid.NewString(),
		Type:      entities.LogTypeSMS,
		SMSSent:   outcome.Succeeded(),
		Status:    status,
		SMSError:  smsError(outcome),
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		slog.WarnContext(ctx, "[messaging][usecase] failed to append sms log", "error", err)
	}
}
