package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/mouseagents/room-finder/internal/alert"
	"github.com/mouseagents/room-finder/internal/scraper"
)

// Mailer sends alert emails through SendGrid. It implements scraper.Notifier.
// A nil Mailer is valid and logs instead of sending, so the pipeline can run
// without a configured API key.
type Mailer struct {
	client   *sendgrid.Client
	fromName string
	from     string
	logger   *slog.Logger
}

// NewMailer creates a SendGrid-backed mailer. Returns nil when apiKey is
// empty.
func NewMailer(apiKey, fromEmail, fromName string, logger *slog.Logger) *Mailer {
	if apiKey == "" {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		from:     fromEmail,
		logger:   logger,
	}
}

// Send renders and delivers the alert email for an alert's matches.
func (m *Mailer) Send(ctx context.Context, a *alert.Alert, matches []scraper.Match) error {
	if m == nil {
		slog.Default().Info("Email delivery disabled, skipping send",
			"alert_id", a.ID, "to", a.UserEmail, "matches", len(matches))
		return nil
	}

	html, err := RenderEmail(a, matches)
	if err != nil {
		return err
	}

	msg := mail.NewSingleEmail(
		mail.NewEmail(m.fromName, m.from),
		Subject(a),
		mail.NewEmail(a.ClientName, a.UserEmail),
		renderPlainText(a, matches),
		html,
	)

	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send returned %d: %s", resp.StatusCode, truncateBody(resp.Body, 200))
	}

	m.logger.Info("Alert email sent",
		"alert_id", a.ID, "to", a.UserEmail, "matches", len(matches))
	return nil
}

func truncateBody(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
