package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"brightside-be/internal/entity"
)

type IEmailService interface {
	SendDistressAlert(user *entity.User, contact entity.Contact, distressLevel int, message string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderEmail, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
		senderName:  senderName,
	}
}

// SendDistressAlert notifies one emergency contact that the user's distress
// level crossed the alert threshold.
func (s *emailService) SendDistressAlert(user *entity.User, contact entity.Contact, distressLevel int, message string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", contact.Email)
	m.SetHeader("Subject", fmt.Sprintf("URGENT: Emotional Support Alert for %s", user.Name))

	body := fmt.Sprintf(`
		<h2>Emergency Alert: High Emotional Distress Detected</h2>
		<p>Our system has detected signs of significant emotional distress for %s.</p>

		<h3>Details:</h3>
		<ul>
			<li><strong>Distress Score:</strong> %d/100</li>
			<li><strong>Timestamp:</strong> %s</li>
			<li><strong>Message Content:</strong> "%s"</li>
		</ul>

		<p>Please consider reaching out to %s as soon as possible to provide support.</p>

		<hr>
		<p><small>This is an automated message from the BrightSide Emotional Support Platform.</small></p>
	`, user.Name, distressLevel, time.Now().Format("2006-01-02 15:04:05"), message, user.Name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send distress alert to %s: %w", contact.Email, err)
	}
	return nil
}
