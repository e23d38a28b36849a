// Package smtp sends transactional email over plain SMTP. The only message
// today is the payment confirmation a customer receives once an admin marks
// their order as paid.
package smtp

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"caramelt/internal/core/domain/model/customer"
	"caramelt/internal/core/domain/model/order"
)

// Config holds the SMTP connection settings and sender identity.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// PaymentConfirmationSender delivers payment confirmation emails via SMTP.
type PaymentConfirmationSender struct {
	config   Config
	template *template.Template
}

// NewPaymentConfirmationSender creates a sender with the parsed email
// template ready to render.
func NewPaymentConfirmationSender(config Config) (*PaymentConfirmationSender, error) {
	tmpl, err := template.New("payment_confirmation").Parse(paymentConfirmationTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse payment confirmation template: %w", err)
	}

	return &PaymentConfirmationSender{
		config:   config,
		template: tmpl,
	}, nil
}

// SendPaymentConfirmation renders and sends the payment confirmation email
// for the order to its customer.
func (s *PaymentConfirmationSender) SendPaymentConfirmation(ctx context.Context, aggregate *order.Order, recipient *customer.Customer) error {
	body, err := s.render(aggregate, recipient)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Payment confirmed for order %s", aggregate.Code())
	message := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		s.config.From,
		recipient.Email(),
		subject,
		body,
	)

	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := s.config.Host + ":" + s.config.Port

	if err := smtp.SendMail(addr, auth, s.config.From, []string{recipient.Email()}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// emailData is the template model for the payment confirmation body.
type emailData struct {
	CustomerName string
	OrderCode    string
	PrepDate     string
	Items        []emailItem
	Total        string
}

type emailItem struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

func (s *PaymentConfirmationSender) render(aggregate *order.Order, recipient *customer.Customer) (string, error) {
	items := make([]emailItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, emailItem{
			Name:      item.ProductName(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().String(),
			LineTotal: item.LineTotal().String(),
		})
	}

	// Customers see the confirmed date once an admin has set one.
	prepDate := aggregate.RequestedPrepDate()
	if aggregate.ConfirmedPrepDate() != nil {
		prepDate = *aggregate.ConfirmedPrepDate()
	}

	data := emailData{
		CustomerName: recipient.FullName(),
		OrderCode:    aggregate.Code(),
		PrepDate:     prepDate.Format("Monday, 2 January 2006"),
		Items:        items,
		Total:        aggregate.Total().String(),
	}

	var body bytes.Buffer
	if err := s.template.Execute(&body, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}

	return body.String(), nil
}
