package notifications

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/Heisenberg-Vader/Auction-Website/domain"
)

// SMTPConfig holds all configuration for the SMTP mailer.
type SMTPConfig struct {
	Host          string
	Port          string
	Username      string
	Password      string
	From          string
	VerifyURLBase string
}

// SMTPServiceImpl implements domain.Mailer over plain SMTP. Compatible with
// any provider: SES, Mailgun, Mailpit (local dev), etc.
type SMTPServiceImpl struct {
	cfg SMTPConfig
}

// NewSMTPService creates a new SMTP notification service
func NewSMTPService(cfg SMTPConfig) domain.Mailer {
	return &SMTPServiceImpl{cfg: cfg}
}

// SendVerificationEmail implements domain.Mailer. When no SMTP host is
// configured the message is logged instead of sent, keeping local
// development usable without a mail server.
func (s *SMTPServiceImpl) SendVerificationEmail(ctx context.Context, to, token string) error {
	verificationLink := fmt.Sprintf("%s?token=%s", s.cfg.VerifyURLBase, token)

	if s.cfg.Host == "" {
		log.Printf("[MOCK EMAIL] To: %s, Subject: Email Verification - Auction Website, Link: %s", to, verificationLink)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	subject := "Email Verification - Auction Website"
	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Email Verification</h2>
  <p>Thank you for registering! Please click the button below to verify your email:</p>
  <a href="%s"
     style="background-color: #007bff; color: white; padding: 10px 20px;
            text-decoration: none; border-radius: 5px; display: inline-block;">
    Verify Email
  </a>
</div>`, verificationLink)

	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := s.cfg.Host + ":" + s.cfg.Port
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}
