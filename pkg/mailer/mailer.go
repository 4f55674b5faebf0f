package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Config holds SMTP configuration.
type Config struct {
	Host     string // SMTP server host
	Port     int    // SMTP server port (default 587)
	Username string // Auth username (usually the from address)
	Password string
	From     string // From address; defaults to Username
}

// Client is an SMTP-backed mailer.
type Client struct {
	addr string
	auth smtp.Auth
	from string
}

var _ IMailer = (*Client)(nil)

// New creates a new SMTP mailer.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("mailer: SMTP host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &Client{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}, nil
}

// Send delivers a plain-text email.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("mailer: recipient is required")
	}

	var msg strings.Builder
	msg.WriteString("From: " + c.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(c.addr, c.auth, c.from, []string{to}, []byte(msg.String()))
	}()

	// net/smtp has no context support; honor cancellation around it.
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailer: failed to send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mailer: send cancelled: %w", ctx.Err())
	}
}
