package services

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"mediamate-backend/internal/config"

	"github.com/sirupsen/logrus"
)

var ErrMailNotConfigured = errors.New("mail transport is not configured")

type MailService interface {
	// SendContact forwards a contact-form submission to the site inbox,
	// with the visitor's address set as Reply-To.
	SendContact(name, email, message string) error
}

type mailService struct {
	cfg    config.SMTPConfig
	send   func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
	logger *logrus.Logger
}

func NewMailService(cfg config.SMTPConfig, logger *logrus.Logger) MailService {
	return &mailService{
		cfg:    cfg,
		send:   smtp.SendMail,
		logger: logger,
	}
}

func (s *mailService) SendContact(name, email, message string) error {
	if s.cfg.Host == "" || s.cfg.To == "" {
		return ErrMailNotConfigured
	}

	subject := fmt.Sprintf("Contact form message from %s", name)
	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&body, "To: %s\r\n", s.cfg.To)
	fmt.Fprintf(&body, "Reply-To: %s\r\n", email)
	fmt.Fprintf(&body, "Subject: %s\r\n", subject)
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	body.WriteString("\r\n")
	fmt.Fprintf(&body, "Name: %s\nEmail: %s\n\n%s\n", name, email, message)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := s.cfg.Host + ":" + s.cfg.Port
	if err := s.send(addr, auth, s.cfg.From, []string{s.cfg.To}, []byte(body.String())); err != nil {
		s.logger.WithError(err).WithField("smtp_host", s.cfg.Host).Error("Failed to send contact mail")
		return fmt.Errorf("failed to send contact mail: %w", err)
	}

	s.logger.WithField("from", email).Info("Contact mail sent")
	return nil
}
