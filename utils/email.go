// Package utils holds outbound-mail helpers for the storefront.
package utils

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"tunga-storefront/models"
)

// Mailer sends storefront emails. Delivery is best-effort everywhere:
// a failed send never blocks the operation that triggered it.
type Mailer interface {
	SendContactMessage(fromName, fromEmail, message string) error
	SendOrderConfirmation(toEmail string, order models.Order) error
}

// EmailService sends emails through SendGrid.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService returns a SendGrid-backed mailer. The sender address
// appears as the From header on every mail.
func NewEmailService(apiKey, sender string) *EmailService {
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// sendEmail sends a basic email to the specified recipient.
func (es *EmailService) sendEmail(toEmail, subject, htmlContent string) error {
	from := mail.NewEmail("TUNGA NAKANGAKA", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlContent, htmlContent)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", resp.StatusCode)
	}
	return nil
}

// SendContactMessage forwards a contact-form submission to the shop's
// official inbox.
func (es *EmailService) SendContactMessage(fromName, fromEmail, message string) error {
	subject := fmt.Sprintf("Contact form: %s", fromName)
	htmlContent := fmt.Sprintf(
		"<strong>From:</strong> %s &lt;%s&gt;<br><br>%s",
		fromName, fromEmail, message,
	)
	return es.sendEmail(models.ContactEmail, subject, htmlContent)
}

// SendOrderConfirmation sends an order confirmation email to the user.
func (es *EmailService) SendOrderConfirmation(toEmail string, order models.Order) error {
	subject := "Order Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Thank you for your purchase! Your order (ID: %s) has been placed and is pending payment.<br><br>Total Amount: <strong>%d RWF</strong><br>Payment Method: <strong>%s</strong><br><br>Thank you for shopping with us!",
		order.ID,
		order.Total,
		order.Method,
	)
	return es.sendEmail(toEmail, subject, htmlContent)
}

// NopMailer discards all mail. It is used when no SendGrid key is
// configured and in tests.
type NopMailer struct{}

// SendContactMessage discards the message.
func (NopMailer) SendContactMessage(string, string, string) error { return nil }

// SendOrderConfirmation discards the message.
func (NopMailer) SendOrderConfirmation(string, models.Order) error { return nil }
