package libs

import (
	"fmt"
	"html"
	"strings"

	"ansh-apparels/models"

	"gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	recipients []string
}

func NewMailer(host string, port int, user, password, from string, recipients []string) *Mailer {
	if port == 0 {
		port = 587
	}
	if from == "" {
		from = user
	}
	return &Mailer{
		dialer:     gomail.NewDialer(host, port, user, password),
		from:       from,
		recipients: recipients,
	}
}

// NotifyContact mails a new contact message to every admin address.
func (m *Mailer) NotifyContact(msg models.ContactMessage) error {
	if len(m.recipients) == 0 {
		return nil
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.recipients...)
	mail.SetHeader("Subject", fmt.Sprintf("New contact message from %s - Ansh Apparels", msg.Name))
	if msg.Email != nil {
		mail.SetHeader("Reply-To", *msg.Email)
	}
	mail.SetBody("text/html", contactBody(msg))

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func contactBody(msg models.ContactMessage) string {
	optional := func(v *string) string {
		if v == nil {
			return "-"
		}
		return html.EscapeString(*v)
	}

	message := strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>")

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background-color: white; padding: 30px; border-radius: 10px; }
        .logo { font-size: 24px; font-weight: bold; color: #111; text-align: center; margin-bottom: 20px; }
        .message-box { background-color: #fafafa; border-left: 4px solid #111; padding: 16px; margin: 20px 0; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Ansh Apparels</div>
        <h2 style="color: #333;">New contact message</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <div class="message-box">%s</div>
        <p style="color: #666; font-size: 12px;">Received %s</p>
    </div>
</body>
</html>
	`, html.EscapeString(msg.Name), optional(msg.Phone), optional(msg.Email), message,
		msg.CreatedAt.Format("02 Jan 2006 15:04 MST"))
}
