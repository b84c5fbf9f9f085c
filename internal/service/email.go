package service

import (
	"context"
	"fmt"

	"rentamaq-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService builds the SendGrid-backed notifier. With an empty API
// key sends are skipped and logged, which keeps local setups working
// without credentials.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendgridEmailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (s *sendgridEmailService) send(ctx context.Context, toEmail, toName, subject, body string) error {
	if s.apiKey == "" {
		logger.DebugContext(ctx, "email sending disabled, skipping", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendgridEmailService) SendContractCreatedNotification(ctx context.Context, email, clientName, number string, total decimal.Decimal) error {
	subject := fmt.Sprintf("Contrato de arriendo %s registrado", number)
	body := fmt.Sprintf("Estimado(a) %s,\n\nSu contrato de arriendo %s ha sido registrado por un total de S/ %s (IGV incluido).\n\nSaludos,\nRentaMaq", clientName, number, total.StringFixed(2))
	return s.send(ctx, email, clientName, subject, body)
}

func (s *sendgridEmailService) SendPaymentConfirmedNotification(ctx context.Context, email, paymentNumber, contractNumber string, amount decimal.Decimal) error {
	subject := fmt.Sprintf("Pago %s confirmado", paymentNumber)
	body := fmt.Sprintf("Hemos confirmado su pago %s por S/ %s, aplicado al contrato %s.\n\nSaludos,\nRentaMaq", paymentNumber, amount.StringFixed(2), contractNumber)
	return s.send(ctx, email, "", subject, body)
}

func (s *sendgridEmailService) SendReturnReminder(ctx context.Context, email, clientName, contractNumber, endDate string) error {
	subject := fmt.Sprintf("Recordatorio: contrato %s vence el %s", contractNumber, endDate)
	body := fmt.Sprintf("Estimado(a) %s,\n\nLe recordamos que el contrato de arriendo %s tiene fecha estimada de devolución el %s.\n\nSaludos,\nRentaMaq", clientName, contractNumber, endDate)
	return s.send(ctx, email, clientName, subject, body)
}
