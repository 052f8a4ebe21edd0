package mailer

import "github.com/growthops/checkin-api/pkg/config"

// Service sends the one transactional mail this system needs: an invite to
// the admin console for a newly added staff account.
type Service interface {
	SendInvite(toEmail, role, loginURL string) error
}

// FromConfig picks the configured transport: dev logging, MailerSend when
// an API key is set, SMTP otherwise.
func FromConfig(cfg config.EmailConfig) Service {
	if cfg.DevMode {
		return NewDevMailer()
	}
	if cfg.MailerSendKey != "" {
		return NewMailerSend(cfg.MailerSendKey, cfg.FromName, cfg.SMTPFrom)
	}
	return NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPUseTLS)
}
