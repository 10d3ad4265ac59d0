package email

import (
	"fmt"
	"net/url"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "https://app.crewhub.io")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendInviteEmail mails an employee their workspace invite link.
func (s *SMTPEmailService) SendInviteEmail(to, name, token string) error {
	inviteURL := fmt.Sprintf("%s/invite/accept?token=%s", s.config.BaseURL, url.QueryEscape(token))

	subject := "You've Been Invited to Join Your Team"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>You've been invited to join your team's workspace. Click the link below to set up your account:</p>
			<p><a href="%s">Accept Invitation</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>If you weren't expecting this invitation, please ignore this email.</p>
		</body>
		</html>
	`, name, inviteURL, inviteURL)

	plainBody := fmt.Sprintf(`
Hi %s,

You've been invited to join your team's workspace. Visit the following URL to set up your account:
%s

If you weren't expecting this invitation, please ignore this email.
	`, name, inviteURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

// SendPasswordChangedEmail notifies a user their password was changed.
func (s *SMTPEmailService) SendPasswordChangedEmail(to string) error {
	subject := "Password Changed Successfully"
	htmlBody := `
		<html>
		<body>
			<h2>Password Changed</h2>
			<p>Your password has been successfully changed.</p>
			<p>If you didn't make this change, please contact support immediately.</p>
		</body>
		</html>
	`

	plainBody := `
Password Changed

Your password has been successfully changed.

If you didn't make this change, please contact support immediately.
	`

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
