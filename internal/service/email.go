package service

import (
	"context"
	"fmt"

	"spartans-cricket-backend/internal/config"
	"spartans-cricket-backend/internal/domain"
	"spartans-cricket-backend/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// mailSender is the part of the SendGrid client the service uses.
type mailSender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type sendGridEmailService struct {
	client    mailSender
	fromEmail string
	fromName  string
	recipient string
}

// NewEmailService returns a SendGrid-backed service, or one that only logs when no API key is set.
func NewEmailService(cfg config.EmailConfig) EmailService {
	if cfg.SendGridAPIKey == "" || cfg.AdminRecipient == "" {
		return logOnlyEmailService{}
	}
	return newSendGridEmailService(sendgrid.NewSendClient(cfg.SendGridAPIKey), cfg)
}

func newSendGridEmailService(client mailSender, cfg config.EmailConfig) *sendGridEmailService {
	return &sendGridEmailService{
		client:    client,
		fromEmail: cfg.From,
		fromName:  cfg.FromName,
		recipient: cfg.AdminRecipient,
	}
}

func digestBody(s domain.ModerationSummary) (string, string) {
	plain := fmt.Sprintf("Hello,\n\nThe following submissions are waiting for review:\n\n"+
		"  New join requests:   %d\n  New registrations:   %d\n  Players to approve:  %d\n\n"+
		"Spartans Cricket Club", s.NewJoinRequests, s.NewRegistrations, s.UnapprovedPlayers)
	html := fmt.Sprintf(`<html><body>
<p>The following submissions are waiting for review:</p>
<ul>
<li>New join requests: <strong>%d</strong></li>
<li>New registrations: <strong>%d</strong></li>
<li>Players to approve: <strong>%d</strong></li>
</ul>
<p>Spartans Cricket Club</p>
</body></html>`, s.NewJoinRequests, s.NewRegistrations, s.UnapprovedPlayers)
	return plain, html
}

func (s *sendGridEmailService) SendModerationDigest(ctx context.Context, summary domain.ModerationSummary) error {
	plain, html := digestBody(summary)
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("Club Administrator", s.recipient)
	message := mail.NewSingleEmail(from, "Spartans moderation queue", to, plain, html)

	logger.ExternalServiceCall(ctx, "sendgrid", "Send", "to", s.recipient)
	response, err := s.client.SendWithContext(ctx, message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult(ctx, "sendgrid", "Send", err)
	if err != nil {
		return fmt.Errorf("failed to send moderation digest: %w", err)
	}
	return nil
}

type logOnlyEmailService struct{}

func (logOnlyEmailService) SendModerationDigest(ctx context.Context, summary domain.ModerationSummary) error {
	logger.InfoContext(ctx, "Email disabled, moderation digest not sent",
		"join_requests", summary.NewJoinRequests,
		"registrations", summary.NewRegistrations,
		"players", summary.UnapprovedPlayers)
	return nil
}
