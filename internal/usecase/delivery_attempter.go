package usecase

import (
	"context"
	"log/slog"

	"cfr_notifier/internal/domain/entities"
	"cfr_notifier/internal/usecase/interfaces"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// DeliveryAttempter sends one message on one channel through the retrier
// and reports the outcome. It never returns an error: failures become
// entities.Failed outcomes carrying the last error text.
type DeliveryAttempter struct {
	sender  interfaces.IMailSender
	retrier *Retrier
	metrics interfaces.IDeliveryMetrics
}

func NewDeliveryAttempter(sender interfaces.IMailSender, retrier *Retrier, metrics interfaces.IDeliveryMetrics) *DeliveryAttempter {
	if retrier == nil {
		retrier = NewRetrier(DefaultMaxAttempts, DefaultRetryDelay)
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &DeliveryAttempter{sender: sender, retrier: retrier, metrics: metrics}
}

func (a *DeliveryAttempter) SendEmail(ctx context.Context, to, subject, text, html string) entities.ChannelOutcome {
	return a.Attempt(ctx, ChannelEmail, interfaces.MailMessage{To: to, Subject: subject, Text: text, HTML: html})
}

// SendSMS relays body to an email-to-SMS gateway address. The subject is
// left empty so carriers do not prepend it to the text.
func (a *DeliveryAttempter) SendSMS(ctx context.Context, gatewayAddress, body string) entities.ChannelOutcome {
	return a.Attempt(ctx, ChannelSMS, interfaces.MailMessage{To: gatewayAddress, Text: body})
}

func (a *DeliveryAttempter) Attempt(ctx context.Context, channel string, msg interfaces.MailMessage) entities.ChannelOutcome {
	err := a.retrier.Do(ctx, func(ctx context.Context) error {
		return a.sender.Send(ctx, msg)
	})

	outcome := entities.Sent()
	if err != nil {
		slog.WarnContext(ctx, "[delivery] send failed", "channel", channel, "to", msg.To, "error", err)
		outcome = entities.Failed(err.Error())
	} else {
		slog.InfoContext(ctx, "[delivery] sent", "channel", channel, "to", msg.To)
	}
	a.metrics.ObserveChannel(channel, outcome.Kind.String())
	return outcome
}

type noopMetrics struct{}

func (noopMetrics) ObserveChannel(string, string) {}
func (noopMetrics) ObserveRun(string, string)     {}
