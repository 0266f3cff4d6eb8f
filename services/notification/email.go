package notification

import (
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"casaherenia/models"
)

// EmailSender wraps the SendGrid client. A nil or keyless sender silently
// drops messages; email is an optional integration in development.
type EmailSender struct {
	client *sendgrid.Client
	from   string
	owner  string
	logger *zap.Logger
}

// NewEmailSender builds the sender. apiKey may be empty.
func NewEmailSender(apiKey, from, owner string, logger *zap.Logger) *EmailSender {
	var client *sendgrid.Client
	if apiKey != "" && from != "" {
		client = sendgrid.NewSendClient(apiKey)
	}
	if owner == "" {
		owner = from
	}
	return &EmailSender{client: client, from: from, owner: owner, logger: logger}
}

func (e *EmailSender) send(to, subject string, lines []string) {
	if e.client == nil {
		e.logger.Debug("email not configured, dropping message", zap.String("subject", subject))
		return
	}

	from := mail.NewEmail("Casa Herenia y Pedro", e.from)
	recipient := mail.NewEmail("", to)
	body := strings.Join(lines, "\n")
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	resp, err := e.client.Send(message)
	if err != nil {
		e.logger.Warn("email send failed", zap.String("to", to), zap.Error(err))
		return
	}
	if resp.StatusCode >= 400 {
		e.logger.Warn("email rejected",
			zap.String("to", to), zap.Int("status", resp.StatusCode))
	}
}

// sendOwner delivers an internal notification to the house operator.
func (e *EmailSender) sendOwner(subject string, lines []string) {
	if e.owner == "" {
		return
	}
	e.send(e.owner, subject, lines)
}

func bookingSummaryLines(b models.Booking) []string {
	return []string{
		fmt.Sprintf("Room: %s", b.RoomID.Label()),
		fmt.Sprintf("Check-in: %s", b.CheckIn),
		fmt.Sprintf("Check-out: %s", b.CheckOut),
		fmt.Sprintf("Guests: %d", b.GuestsCount),
		fmt.Sprintf("Total: %.0f EUR", b.TotalPrice),
	}
}
