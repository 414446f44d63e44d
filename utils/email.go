package utils

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/swiftfix/booking-app/models"
)

// Mailer sends customer emails over SMTP. When no SMTP host is
// configured all sends become logged no-ops, so mail never blocks or
// fails a booking.
type Mailer struct {
	host string
	port int
	user string
	pass string
	log  *zap.Logger
}

func NewMailer(host string, port int, user, pass string, log *zap.Logger) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, log: log}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		m.log.Debug("smtp not configured, skipping email", zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}

// SendBookingConfirmation emails the customer after a successful submit.
// Best effort: failures are logged, never surfaced to the caller.
func (m *Mailer) SendBookingConfirmation(b models.Booking) {
	if b.CustomerEmail == "" {
		return
	}
	subject := fmt.Sprintf("Booking Confirmed - %s", b.ID)
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your repair booking is confirmed.</p>
		<ul>
			<li><strong>Booking:</strong> %s</li>
			<li><strong>Device:</strong> %s %s</li>
			<li><strong>Service:</strong> %s</li>
			<li><strong>When:</strong> %s at %s</li>
			<li><strong>Estimated cost:</strong> %s (pay in-store)</li>
		</ul>
		<p>See you soon,</p>
		<p>SwiftFix Repair Shop</p>
	`, b.CustomerName, b.ID, b.SelectedBrand, b.SelectedModel, b.SelectedIssue,
		b.AppointmentDate, b.AppointmentTime, b.Price)

	if err := m.Send(b.CustomerEmail, subject, body); err != nil {
		m.log.Warn("failed to send booking confirmation",
			zap.String("booking", b.ID), zap.Error(err))
	}
}

// SendReminder emails the customer the day before their appointment.
func (m *Mailer) SendReminder(b models.Booking) {
	if b.CustomerEmail == "" {
		return
	}
	subject := fmt.Sprintf("Reminder: Upcoming Repair - %s", b.SelectedIssue)
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>This is a reminder for your repair appointment tomorrow.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Device:</strong> %s %s</li>
			<li><strong>When:</strong> %s at %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule, contact us as soon as possible.</p>
		<p>SwiftFix Repair Shop</p>
	`, b.CustomerName, b.SelectedIssue, b.SelectedBrand, b.SelectedModel,
		b.AppointmentDate, b.AppointmentTime)

	if err := m.Send(b.CustomerEmail, subject, body); err != nil {
		m.log.Warn("failed to send reminder",
			zap.String("booking", b.ID), zap.Error(err))
	}
}
