package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"rentquote-backend/internal/domain"
	"rentquote-backend/internal/logger"
)

// sendGridEmailService notifies the sales inbox when a quote is submitted.
// With an empty API key the service logs the notification instead of
// sending, so local environments work without SendGrid credentials.
type sendGridEmailService struct {
	apiKey     string
	fromEmail  string
	fromName   string
	adminEmail string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName, adminEmail string) EmailService {
	return &sendGridEmailService{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}
}

func (s *sendGridEmailService) SendQuoteSubmitted(ctx context.Context, quote *domain.Quote) error {
	vatAmount := quote.TotalGross.Sub(quote.TotalNet)
	subject := fmt.Sprintf("Quote %s submitted", quote.QuoteNumber)
	plainText := fmt.Sprintf(
		"Quote %s was submitted by %s.\nNet: %s\nVAT (%s%%): %s\nGross: %s",
		quote.QuoteNumber, quote.CreatorName,
		quote.TotalNet.StringFixed(2), quote.VatRate.StringFixed(0),
		vatAmount.StringFixed(2), quote.TotalGross.StringFixed(2),
	)
	htmlContent := fmt.Sprintf(
		`<html><body><p>Quote <strong>%s</strong> was submitted by %s.</p>
<ul><li>Net: %s</li><li>VAT (%s%%): %s</li><li>Gross: %s</li></ul></body></html>`,
		quote.QuoteNumber, quote.CreatorName,
		quote.TotalNet.StringFixed(2), quote.VatRate.StringFixed(0),
		vatAmount.StringFixed(2), quote.TotalGross.StringFixed(2),
	)

	if s.apiKey == "" {
		logger.InfoContext(ctx, "Email delivery disabled, skipping notification",
			"to", s.adminEmail, "subject", subject)
		return nil
	}

	return s.sendEmail(s.adminEmail, "Sales", subject, plainText, htmlContent)
}

func (s *sendGridEmailService) sendEmail(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
