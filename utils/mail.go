package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"path/filepath"

	"github.com/sehatku/sehatku-api/models"
)

// Notifier is the fulfillment hook fired when an order is paid.
type Notifier interface {
	OrderPaid(order models.Order, payment models.Payment) error
}

// LogNotifier is used when no SMTP settings are configured.
type LogNotifier struct{}

func (LogNotifier) OrderPaid(order models.Order, payment models.Payment) error {
	log.Printf("Order %s paid (payment %s, amount %d). Notify fulfillment.", order.ID, payment.ID, payment.Amount)
	return nil
}

type MailNotifier struct {
	SMTPAddress string
	SMTPHost    string
	From        string
	Password    string
	To          string
}

type orderPaidData struct {
	OrderID      string
	Amount       int64
	ShippingName string
	Address      string
	Phone        string
}

func (m *MailNotifier) OrderPaid(order models.Order, payment models.Payment) error {
	data := orderPaidData{
		OrderID:      order.ID,
		Amount:       payment.Amount,
		ShippingName: order.ShippingName,
		Address:      order.ShippingAddress,
		Phone:        order.ShippingPhone,
	}

	templatePath := filepath.Join("templates", "order_paid.html")
	subject := fmt.Sprintf("Order %s is paid and ready for fulfillment", order.ID)
	return m.send(subject, data, templatePath)
}

func (m *MailNotifier) send(subject string, data orderPaidData, templatePath string) error {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return fmt.Errorf("template parse error: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.From,
		subject,
		body.String(),
	)

	auth := smtp.PlainAuth("", m.From, m.Password, m.SMTPHost)
	if err := smtp.SendMail(m.SMTPAddress, auth, m.From, []string{m.To}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
