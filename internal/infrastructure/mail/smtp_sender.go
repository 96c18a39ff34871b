package mail

import (
	"context"
	"fmt"

	appconfig "cfr_notifier/internal/config"
	"cfr_notifier/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

type dialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPSender delivers email (and email-to-SMS) through one authenticated
// SMTP relay. A connection is opened per message.
type SMTPSender struct {
	client   dialer
	fromName string
	fromAddr string
}

var _ interfaces.IMailSender = (*SMTPSender)(nil)

func NewSMTPSender(cfg appconfig.SMTPConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(cfg.Timeout))
	}
	if cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: failed to create smtp client: %w", err)
	}
	return newSMTPSender(client, cfg.FromName, cfg.User), nil
}

func newSMTPSender(client dialer, fromName, fromAddr string) *SMTPSender {
	return &SMTPSender{client: client, fromName: fromName, fromAddr: fromAddr}
}

func (s *SMTPSender) Send(ctx context.Context, msg interfaces.MailMessage) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mail: send to %s: %w", msg.To, err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(msg interfaces.MailMessage) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.fromName, s.fromAddr); err != nil {
		return nil, fmt.Errorf("mail: invalid sender %q: %w", s.fromAddr, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("mail: invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return m, nil
}
