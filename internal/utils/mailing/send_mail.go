package mailing

import (
	"fmt"
	"html"
	"recipebox/internal/utils"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func (m MailConfig) Enabled() bool {
	return m.SMTPHost != "" && m.SMTPEmail != ""
}

// Mailer delivers a single HTML message.
type Mailer interface {
	Send(toEmail string, subject string, body string) error
}

type smtpMailer struct{}

// NewMailer returns nil when SMTP is not configured.
func NewMailer() Mailer {
	if !LoadMailConfig().Enabled() {
		return nil
	}
	return smtpMailer{}
}

func (smtpMailer) Send(toEmail string, subject string, body string) error {
	return SendMail(toEmail, subject, body)
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", mailer.FormatAddress(emailConfig.SMTPEmail, emailConfig.SMTPSender))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func WelcomeBody(username string) string {
	appURL := LoadMailConfig().AppURL
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome to recipebox! Log in at <a href=\"%s/login_page\">%s</a> to share your first recipe.</p>",
		html.EscapeString(username), appURL, appURL,
	)
}
