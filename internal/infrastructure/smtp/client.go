package smtp

import (
	"context"
	"crypto/tls"
	"fmt"

	"loveacts-service/internal/config"
	"loveacts-service/internal/domain/service"

	"gopkg.in/gomail.v2"
)

// dialer is the part of *gomail.Dialer the client uses
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Client sends HTML mail through an SMTP relay
type Client struct {
	cfg    *config.SMTPConfig
	dialer dialer
}

// NewClient creates a new SMTP client
func NewClient(cfg *config.SMTPConfig) *Client {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	// UseTLS selects STARTTLS (587), otherwise implicit SSL (465).
	// Port 25/1025 relays without credentials get neither.
	switch {
	case cfg.UseTLS:
		d.SSL = false
		d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	case cfg.Port == 465:
		d.SSL = true
		d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	}

	return &Client{cfg: cfg, dialer: d}
}

// Send sends an HTML email
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", c.cfg.FromEmail, c.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

var _ service.Mailer = (*Client)(nil)
