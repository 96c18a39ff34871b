package interfaces

import "context"

//go:generate mockgen -source=mail_sender_interface.go -destination=mocks/mail_sender_mock.go -package=mock_interfaces

// MailMessage is one outbound message. Email-to-SMS relays use the same
// shape with an empty Subject and no HTML part.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// IMailSender abstracts the SMTP transport. Every email and SMS leaves
// through it.
type IMailSender interface {
	Send(ctx context.Context, msg MailMessage) error
}
