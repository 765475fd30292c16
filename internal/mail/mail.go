// Package mail sends outbound mail. The only message the backend sends is
// the password reset link; sending is fire-and-forget and a failure must
// never take the request down.
package mail

import (
	"fmt"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"
)

// Sender sends a password reset link to a user.
type Sender interface {
	SendPasswordReset(to, username, resetURL string) error
}

// SMTPSender sends mail over SMTP with STARTTLS.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s SMTPSender) SendPasswordReset(to, username, resetURL string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject("Password Reset Request")
	msg.SetBodyString(gomail.TypeTextPlain, fmt.Sprintf(`Hi %s,

Click the link below to reset your password:
%s

This link will expire in 1 hour.

If you didn't request this, please ignore this email.
`, username, resetURL))

	client, err := gomail.NewClient(s.Host,
		gomail.WithPort(s.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.Username),
		gomail.WithPassword(s.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("could not create mail client: %w", err)
	}

	err = client.DialAndSend(msg)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("could not send password reset mail")
		return fmt.Errorf("could not send mail: %w", err)
	}

	return nil
}
