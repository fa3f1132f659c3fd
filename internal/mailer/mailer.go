package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Skotchmaster/storefront/internal/config"
)

// Mailer sends outbound mail over SMTP. Delivery is best-effort: callers log
// failures and never surface them, so a nil Mailer simply drops messages.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg *config.Config) *Mailer {
	if cfg.SMTP_HOST == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTP_HOST, cfg.SMTP_PORT, cfg.SMTP_USER, cfg.SMTP_PASSWORD),
		from:   cfg.EMAIL_FROM,
	}
}

func (m *Mailer) SendResetToken(to, resetToken string) error {
	if m == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/plain", fmt.Sprintf("Your password reset token is: %s", resetToken))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
