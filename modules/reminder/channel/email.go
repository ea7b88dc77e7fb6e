package channel

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"romantic-api/core/config"
	"romantic-api/core/constants"
)

// EmailChannel delivers reminders over SMTP. When no transport is configured
// every send is skipped with a diagnostic; that is the normal state for
// installations without mail.
type EmailChannel struct {
	cfg         config.SMTPConfig
	dialTimeout time.Duration
}

func NewEmailChannel(cfg config.SMTPConfig) *EmailChannel {
	return &EmailChannel{
		cfg:         cfg,
		dialTimeout: 30 * time.Second,
	}
}

func (c *EmailChannel) Name() string {
	return constants.ChannelEmail
}

func (c *EmailChannel) Send(ctx context.Context, msg Message) Result {
	if !c.cfg.Configured() {
		return Skipped("SMTP not configured")
	}

	if err := c.sendSMTP(ctx, msg.To, c.buildMessage(msg)); err != nil {
		return Failed(err)
	}
	return Sent()
}

func (c *EmailChannel) buildMessage(msg Message) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", c.cfg.From))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)
	b.WriteString("\r\n")
	return b.String()
}

func (c *EmailChannel) sendSMTP(ctx context.Context, to, msg string) error {
	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	dialer := &net.Dialer{Timeout: c.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = conn.Close() }()

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if c.cfg.Secure {
		tlsConfig := &tls.Config{
			ServerName: c.cfg.Host,
			MinVersion: tls.VersionTLS12,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	auth := smtp.PlainAuth("", c.cfg.User, c.cfg.Pass, c.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := client.Mail(c.cfg.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start message: %w", err)
	}
	if _, err := writer.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close message: %w", err)
	}

	// Delivery is fire-and-forget; a failed QUIT after DATA is not an error.
	_ = client.Quit()
	return nil
}
