package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"brokerage-backend/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from, alertsTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		AlertsTo: alertsTo,
	}
}

// SendLeadAlert tells the brokerage inbox a new chat lead landed.
func (s *EmailSender) SendLeadAlert(payload queue.NotificationPayload) error {
	data := LeadAlertData{
		Name:      payload.Name,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Interest:  payload.Interest,
		Summary:   payload.Summary,
		LeadScore: payload.LeadScore,
	}

	subject := fmt.Sprintf("New website lead (score %d)", payload.LeadScore)
	return s.send(s.AlertsTo, subject, "lead_alert.html", data)
}

func (s *EmailSender) SendContactAlert(payload queue.NotificationPayload) error {
	data := ContactAlertData{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Message: payload.Message,
	}

	subject := fmt.Sprintf("Contact form message from %s", payload.Name)
	return s.send(s.AlertsTo, subject, "contact_alert.html", data)
}

// SendLeadFollowUp goes to the lead, not the brokerage.
func (s *EmailSender) SendLeadFollowUp(payload queue.NotificationPayload) error {
	if payload.Email == "" {
		// Nothing to send to; ack and move on.
		return nil
	}

	data := FollowUpData{Name: payload.Name}
	return s.send(payload.Email, "Still house hunting? We're here to help", "lead_followup.html", data)
}

func (s *EmailSender) send(to, subject, templateName string, data any) error {
	tmplPath := filepath.Join("templates", templateName)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email via SMTP: %w", err)
	}

	return nil
}
