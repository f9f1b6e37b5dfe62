// Package email delivers verification mail over SMTP.
package email

import (
	"fmt"

	portssvc "github.com/cgcym1234/authserver/internal/core/ports/services"
	"gopkg.in/gomail.v2"
)

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a Mailer backed by a gomail dialer.
func NewSMTPMailer(host string, port int, user, password, from string) portssvc.Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (m *smtpMailer) SendAccountActivation(to, link string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "激活账号")
	msg.SetBody("text/plain", fmt.Sprintf("点击此链接激活账号：%s", link))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send activation email: %w", err)
	}
	return nil
}

func (m *smtpMailer) SendChangePasswordCode(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "修改密码验证码")
	msg.SetBody("text/plain", fmt.Sprintf("修改密码的验证码是: %s", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send change-password email: %w", err)
	}
	return nil
}
