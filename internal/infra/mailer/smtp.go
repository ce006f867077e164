package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/errs"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPSender struct {
	addr     string
	auth     smtp.Auth
	from     string
	renderer *Renderer
	send     sendMailFunc
}

func NewSMTPSender(cfg config.MailConfig, renderer *Renderer) *SMTPSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}
	return &SMTPSender{
		addr:     net.JoinHostPort(cfg.SMTPHost, cfg.SMTPPort),
		auth:     auth,
		from:     cfg.From,
		renderer: renderer,
		send:     smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg notification.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := s.renderer.Render(msg)
	if err != nil {
		return err
	}
	if err := s.send(s.addr, s.auth, s.from, []string{msg.Recipient}, buildMIME(s.from, msg, body)); err != nil {
		return errs.Wrapf(err, "smtp send to %s", msg.Recipient)
	}
	return nil
}

func buildMIME(from string, msg notification.Message, html string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.Recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Message-ID: <%s@gaming-zone-booking>\r\n", msg.ID)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(html)
	return []byte(b.String())
}

// LogSender renders the message and logs it instead of sending. Used when
// SMTP is not configured.
type LogSender struct {
	renderer *Renderer
	logger   *slog.Logger
}

func NewLogSender(renderer *Renderer, logger *slog.Logger) *LogSender {
	return &LogSender{renderer: renderer, logger: logger}
}

func (s *LogSender) Send(ctx context.Context, msg notification.Message) error {
	body, err := s.renderer.Render(msg)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "email",
		"message_id", msg.ID.String(),
		"kind", string(msg.Kind),
		"to", msg.Recipient,
		"subject", msg.Subject,
		"bytes", len(body))
	return nil
}
