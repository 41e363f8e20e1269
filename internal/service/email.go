package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strconv"
	"strings"
	"text/template"

	"github.com/resend/resend-go/v2"

	"github.com/lifefinance/navigator/internal/config"
	"github.com/lifefinance/navigator/internal/markdown"
)

//go:embed templates/*.md
var emailTemplatesFS embed.FS

var emailTemplates = template.Must(template.ParseFS(emailTemplatesFS, "templates/*.md"))

type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers one rendered message.
type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
	Name() string
}

// NewMailer picks the delivery channel. Development always logs instead of sending.
func NewMailer(cfg *config.Config) (Mailer, error) {
	if cfg.IsDevelopment() {
		return LogMailer{}, nil
	}

	switch cfg.EmailProvider {
	case config.EmailProviderResend:
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
		}
		return NewResendMailer(cfg.ResendAPIKey, cfg.EmailFrom), nil
	case config.EmailProviderSMTP:
		return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s (supported: resend, smtp)", cfg.EmailProvider)
	}
}

type LogMailer struct{}

func (LogMailer) Name() string { return "log" }

func (LogMailer) Send(_ context.Context, msg EmailMessage) error {
	slog.Info("email sent (dev mode)", "to", msg.To, "subject", msg.Subject)
	return nil
}

type ResendMailer struct {
	client    *resend.Client
	fromEmail string
}

func NewResendMailer(apiKey, fromEmail string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey), fromEmail: fromEmail}
}

func (m *ResendMailer) Name() string { return config.EmailProviderResend }

func (m *ResendMailer) Send(ctx context.Context, msg EmailMessage) error {
	params := &resend.SendEmailRequest{
		From:    m.fromEmail,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}

type SMTPMailer struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	sendMail  func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(host string, port int, username, password, fromEmail string) *SMTPMailer {
	return &SMTPMailer{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromEmail: fromEmail,
		sendMail:  smtp.SendMail,
	}
}

func (m *SMTPMailer) Name() string { return config.EmailProviderSMTP }

// Send upgrades to STARTTLS when the server offers it (smtp.SendMail does this).
func (m *SMTPMailer) Send(_ context.Context, msg EmailMessage) error {
	if m.username == "" || m.password == "" {
		return fmt.Errorf("SMTP username and password must be provided")
	}

	addr := m.host + ":" + strconv.Itoa(m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	err := m.sendMail(addr, auth, m.fromEmail, []string{msg.To}, m.buildMessage(msg))
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) buildMessage(msg EmailMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.fromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")
	return []byte(b.String())
}

type EmailService struct {
	mailer  Mailer
	parser  *markdown.Parser
	appURL  string
	appName string
}

func NewEmailService(mailer Mailer, parser *markdown.Parser, appURL, appName string) *EmailService {
	return &EmailService{
		mailer:  mailer,
		parser:  parser,
		appURL:  appURL,
		appName: appName,
	}
}

// SendReportNotification tells a user their personalized report was refreshed.
func (s *EmailService) SendReportNotification(ctx context.Context, email, name string) error {
	msg, err := s.renderReportNotification(email, name)
	if err != nil {
		return err
	}

	err = s.mailer.Send(ctx, msg)
	if err != nil {
		return err
	}

	slog.Info("email sent", "type", "report_notification", "to", email, "mailer", s.mailer.Name())
	return nil
}

func (s *EmailService) renderReportNotification(email, name string) (EmailMessage, error) {
	var src bytes.Buffer
	err := emailTemplates.ExecuteTemplate(&src, "report_notification.md", map[string]string{
		"Name":       name,
		"AppName":    s.appName,
		"ResultsURL": s.appURL + "/results",
	})
	if err != nil {
		return EmailMessage{}, fmt.Errorf("render template: %w", err)
	}

	html, meta, err := s.parser.ParseWithFrontmatter(src.Bytes())
	if err != nil {
		return EmailMessage{}, fmt.Errorf("render markdown: %w", err)
	}

	return EmailMessage{
		To:      email,
		Subject: markdown.MetaString(meta, "subject"),
		HTML:    string(html),
	}, nil
}
