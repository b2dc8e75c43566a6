package services

import (
	"bytes"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"github.com/SundayYogurt/alumni_service/config"
)

//go:embed templates/*.html
var mailTemplates embed.FS

const (
	subjectResetPassword = "Reset your alumni network password"
	subjectOnboarded     = "Your alumni profile is awaiting approval"
)

type MailService struct {
	cfg  config.MailConfig
	tmpl *template.Template
	log  *slog.Logger
	send func(to string, msg []byte) error
}

func NewMailService(cfg config.MailConfig, logger *slog.Logger) (*MailService, error) {
	tmpl, err := template.ParseFS(mailTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}

	s := &MailService{cfg: cfg, tmpl: tmpl, log: logger}
	s.send = s.sendSMTPWithTimeout
	return s, nil
}

func (s *MailService) SendResetPassword(to, token string, expiresAt time.Time) error {
	link := fmt.Sprintf("%s?token=%s", s.cfg.ResetBaseURL, url.QueryEscape(token))

	body, err := s.render("reset-password.html", map[string]string{
		"Link":      link,
		"ExpiresAt": expiresAt.UTC().Format("15:04 MST, 2 Jan 2006"),
	})
	if err != nil {
		return err
	}
	return s.deliver(to, subjectResetPassword, body)
}

func (s *MailService) SendOnboarded(to, name, approval string) error {
	body, err := s.render("profile-onboarded.html", map[string]string{
		"Name":     name,
		"Approval": approval,
		"Link":     strings.TrimRight(s.cfg.AppBaseURL, "/") + "/dashboard",
	})
	if err != nil {
		return err
	}

	subject := subjectOnboarded
	if approval == "approved" {
		subject = "Welcome to the alumni network"
	}
	return s.deliver(to, subject, body)
}

func (s *MailService) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (s *MailService) deliver(to, subject, htmlBody string) error {
	if strings.ContainsAny(to, "\r\n") {
		return fmt.Errorf("invalid recipient")
	}

	fromHeader := fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.From)
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	if err := s.send(to, []byte(msg)); err != nil {
		return err
	}
	s.log.Info("mail sent", slog.String("subject", subject))
	return nil
}

func (s *MailService) sendSMTPWithTimeout(to string, msg []byte) error {
	addr := net.JoinHostPort(s.cfg.SMTPHost, s.cfg.SMTPPort)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// bounds the whole exchange, not just the dial
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.cfg.SMTPHost}); err != nil {
			return err
		}
	}
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.AppPassword, s.cfg.SMTPHost)
	if err := c.Auth(auth); err != nil {
		return err
	}

	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
