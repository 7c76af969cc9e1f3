// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

type IMailService interface {
	SendTicketIssued(to string, data TicketEmailData) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host     string // e.g. "smtp.gmail.com"
	Port     int    // e.g. 587 (STARTTLS)
	Username string
	Password string
	From     string // envelope from, e.g. "no-reply@desawisata.id"
	FromName string

	AppName    string
	AppBaseURL string
}

type TicketEmailData struct {
	BuyerName   string
	OrderID     string
	Destination string
	VisitDate   string
	Quantity    int
	Total       int64
	AppName     string
	Year        int
}

type smtpMailService struct {
	cfg       SMTPConfig
	ticketTpl *template.Template
}

const ticketHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>Your e-ticket</title></head>
<body style="font-family:Arial,Helvetica,sans-serif;background:#f4f6f8;padding:24px;">
  <div style="max-width:560px;margin:0 auto;background:#ffffff;border-radius:8px;padding:32px;">
    <h2 style="margin-top:0;color:#14532d;">{{.AppName}}</h2>
    <p>Hi {{.BuyerName}},</p>
    <p>Your payment is confirmed and your e-ticket is ready.</p>
    <table style="width:100%;border-collapse:collapse;" cellpadding="6">
      <tr><td style="color:#64748b;">Order</td><td><strong>{{.OrderID}}</strong></td></tr>
      <tr><td style="color:#64748b;">Destination</td><td>{{.Destination}}</td></tr>
      <tr><td style="color:#64748b;">Visit date</td><td>{{.VisitDate}}</td></tr>
      <tr><td style="color:#64748b;">Tickets</td><td>{{.Quantity}}</td></tr>
      <tr><td style="color:#64748b;">Total</td><td>Rp {{.Total}}</td></tr>
    </table>
    <p>Show the QR code on your ticket page at the entrance gate.</p>
    <p style="color:#94a3b8;font-size:12px;">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	ticketTpl := template.Must(template.New("ticketHTML").Parse(ticketHTMLTemplate))

	return &smtpMailService{
		cfg:       cfg,
		ticketTpl: ticketTpl,
	}, nil
}

func (s *smtpMailService) SendTicketIssued(to string, data TicketEmailData) error {
	data.AppName = s.cfg.AppName
	data.Year = time.Now().Year()

	var body bytes.Buffer
	if err := s.ticketTpl.Execute(&body, data); err != nil {
		return err
	}

	subject := fmt.Sprintf("Your e-ticket for %s (%s)", data.Destination, data.OrderID)
	return s.send(to, subject, body.String())
}

// send delivers one HTML mail over STARTTLS.
func (s *smtpMailService) send(to, subject, htmlBody string) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg.Bytes()); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
