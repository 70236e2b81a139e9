package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/tacmarket/marketplace-api/models"
)

// SendEmail delivers one HTML mail through the configured SMTP account.
// Without SMTP settings it is skipped and logged.
func SendEmail(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("SMTP not configured, skipping email to %s", to)
		return nil
	}
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", os.Getenv("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		host,
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}

// SendAppointmentStatusEmail notifies the client that their booking request
// was confirmed or cancelled. Best-effort: failures are logged and swallowed.
func SendAppointmentStatusEmail(a models.Appointment, providerName string) {
	var subject string
	switch a.Status {
	case models.StatusConfirmed:
		subject = "Your appointment has been confirmed"
	case models.StatusCancelled:
		subject = "Your appointment request was declined"
	default:
		return
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>There is an update on your appointment request with %s.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s - %s</li>
			<li><strong>Status:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>TAC Market Place</p>
	`, a.ClientName, providerName, a.Service, a.Date, a.StartTime, a.EndTime, a.Status)

	if err := SendEmail(a.ClientEmail, subject, body); err != nil {
		log.Printf("Failed to send status email for appointment %s: %v", a.ID, err)
	}
}
