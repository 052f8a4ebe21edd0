package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendInvite(toEmail, role, loginURL string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "You have been invited to the 9X Growth admin console"
	text := fmt.Sprintf("You have been added as %s. Log in here: %s", role, loginURL)
	html := fmt.Sprintf(`
		<h2>Welcome to the 9X Growth team</h2>
		<p>You have been added with the <strong>%s</strong> role.</p>
		<p><a href="%s">Log in to the admin console</a></p>
	`, role, loginURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(m.from)
	message.SetRecipients([]mailersend.Recipient{{Email: toEmail}})
	message.SetSubject(subject)
	message.SetText(text)
	message.SetHTML(html)

	_, err := m.client.Email.Send(ctx, message)
	return err
}
