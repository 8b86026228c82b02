package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailgun wraps Mailgun client configuration.
type Mailgun struct {
	Domain string
	APIKey string
	Sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{Domain: domain, APIKey: apiKey, Sender: sender}
}

// Send sends an email via Mailgun. html is optional; if provided it will be used as HTML body.
func (m *Mailgun) Send(ctx context.Context, to, subject, text, html string) error {
	client := mg.NewMailgun(m.Domain, m.APIKey)
	msg := client.NewMessage(m.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}

// SendVerificationCode renders and delivers the login-code email. The caller
// treats a send failure as fatal for the whole send-code operation, so no
// code row is written until this returns nil.
func (m *Mailgun) SendVerificationCode(ctx context.Context, to, code string, ttl time.Duration) error {
	html, err := RenderVerificationCode(code, ttl)
	if err != nil {
		return err
	}
	return m.Send(ctx, to, "Your Verification Code", "Your verification code is: "+code, html)
}
