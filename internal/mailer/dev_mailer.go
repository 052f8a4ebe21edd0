package mailer

import (
	"github.com/growthops/checkin-api/pkg/logger"
)

// DevMailer prints invites to the log instead of sending them.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendInvite(toEmail, role, loginURL string) error {
	logger.Info("[DEV MAIL] Staff invite",
		"to", toEmail,
		"role", role,
		"login_url", loginURL,
	)
	return nil
}
