// Package mailer delivers the service's transactional emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/gulzeynep/GiftCapsule-web/internal/config"
	"github.com/gulzeynep/GiftCapsule-web/internal/domain"
)

type deliverFunc func(ctx context.Context, msg *mail.Msg) error

// Mailer renders and sends notification emails. Sends are best-effort: every
// failure is logged and reported as domain.DispatchFailed.
type Mailer struct {
	cfg     config.SMTPConfig
	log     *slog.Logger
	deliver deliverFunc
}

// New creates a Mailer that delivers through the configured SMTP server.
func New(cfg config.SMTPConfig, logger *slog.Logger) *Mailer {
	m := &Mailer{
		cfg: cfg,
		log: logger.With("adapter", "mailer"),
	}
	m.deliver = m.dialAndSend
	return m
}

// SendGift emails a gift recipient a link to their card.
func (m *Mailer) SendGift(ctx context.Context, to string, n domain.GiftNotification) domain.DispatchResult {
	subject := fmt.Sprintf("🎁 %s sana bir hediye gönderdi!", n.SenderName)
	return m.send(ctx, to, subject, tmplGift, giftView(n))
}

// SendCapsuleCreated confirms a new capsule to its creator.
func (m *Mailer) SendCapsuleCreated(ctx context.Context, to string, n domain.CapsuleCreatedNotification) domain.DispatchResult {
	view := capsuleCreatedView{
		Title:    n.Title,
		OpenDate: n.OpenDate.UTC().Format(openDateLayout),
		ViewLink: n.ViewLink,
	}
	return m.send(ctx, to, "⏰ Zaman Kapsülün Oluşturuldu!", tmplCapsuleCreated, view)
}

// SendCapsuleOpened tells a creator that their capsule can be opened.
func (m *Mailer) SendCapsuleOpened(ctx context.Context, to string, n domain.CapsuleOpenedNotification) domain.DispatchResult {
	return m.send(ctx, to, "🎉 Zaman Kapsülün Açılma Zamanı Geldi!", tmplCapsuleOpened, capsuleOpenedView(n))
}

func (m *Mailer) send(ctx context.Context, to, subject, tmpl string, data any) domain.DispatchResult {
	log := m.log.With(slog.String("template", tmpl), slog.String("to", to))

	if !m.cfg.HasCredentials() {
		log.WarnContext(ctx, "email not sent: smtp credentials are not configured")
		return domain.DispatchFailed
	}

	body, err := render(tmpl, data)
	if err != nil {
		log.ErrorContext(ctx, "email not sent", slog.String("error", err.Error()))
		return domain.DispatchFailed
	}

	msg, err := m.buildMessage(to, subject, body)
	if err != nil {
		log.ErrorContext(ctx, "email not sent", slog.String("error", err.Error()))
		return domain.DispatchFailed
	}

	if err := m.deliver(ctx, msg); err != nil {
		log.ErrorContext(ctx, "email delivery failed", slog.String("error", err.Error()))
		return domain.DispatchFailed
	}

	log.InfoContext(ctx, "email sent")
	return domain.DispatchSent
}

func (m *Mailer) buildMessage(to, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.Sender()); err != nil {
		return nil, fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("set to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}

func (m *Mailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(m.cfg.Timeout),
	}
	if m.cfg.SSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
