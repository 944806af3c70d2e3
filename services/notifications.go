package services

import (
	"fmt"
	"log"
	"time"

	"github.com/MDAMANAHMAD/Roam-Heaven/config"
	"github.com/MDAMANAHMAD/Roam-Heaven/models"

	gomail "gopkg.in/gomail.v2"
)

// Notifier delivers booking confirmations to guests. Delivery is best-effort
// and at-most-once: the booking path never waits on it, never retries it, and
// a failure never surfaces to the guest.
type Notifier interface {
	SendBookingConfirmation(recipient string, booking *models.Booking) error
}

// Active overrides notifier selection when non-nil. Left nil in production;
// set by tests to stub the transport.
var Active Notifier

// deliveryTimeout bounds the SMTP transport only. The booking response has
// already been sent by the time this can expire.
const deliveryTimeout = 15 * time.Second

func activeNotifier() Notifier {
	if Active != nil {
		return Active
	}
	if config.C.EmailUser == "" {
		return LogNotifier{}
	}
	return EmailNotifier{}
}

// DispatchBookingConfirmation sends the confirmation email in a detached
// goroutine. Errors are logged and swallowed.
func DispatchBookingConfirmation(recipient string, booking *models.Booking) {
	notifier := activeNotifier()
	go func() {
		if err := notifier.SendBookingConfirmation(recipient, booking); err != nil {
			log.Println("Error sending email:", err)
			return
		}
		log.Println("Email sent successfully")
	}()
}

// EmailNotifier sends booking confirmations over SMTP.
type EmailNotifier struct{}

func (EmailNotifier) SendBookingConfirmation(recipient string, booking *models.Booking) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.C.EmailUser)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Roam Heaven Booking Confirmation")
	m.SetBody("text/html", bookingConfirmationHTML(booking))

	dialer := gomail.NewDialer(config.C.SMTPHost, config.C.SMTPPort, config.C.EmailUser, config.C.EmailPass)

	errs := make(chan error, 1)
	go func() {
		errs <- dialer.DialAndSend(m)
	}()

	select {
	case err := <-errs:
		return err
	case <-time.After(deliveryTimeout):
		return fmt.Errorf("smtp delivery to %s timed out after %s", recipient, deliveryTimeout)
	}
}

// LogNotifier is the fallback when SMTP is not configured.
type LogNotifier struct{}

func (LogNotifier) SendBookingConfirmation(recipient string, booking *models.Booking) error {
	log.Printf("[notify] booking %d confirmation for %s (SMTP not configured)", booking.ID, recipient)
	return nil
}

func bookingConfirmationHTML(booking *models.Booking) string {
	title := ""
	if booking.Listing != nil {
		title = booking.Listing.Title
	}

	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
            <h1 style="color: #ff385c;">Booking Confirmed!</h1>
            <p>Dear Customer,</p>
            <p>Thank you for booking with Roam Heaven. Here are your details:</p>
            <div style="background: #f7f7f7; padding: 20px; border-radius: 10px;">
                <h3>%s</h3>
                <p><strong>Check-in:</strong> %s</p>
                <p><strong>Check-out:</strong> %s</p>
                <p><strong>Guests:</strong> %d</p>
                <p><strong>Total Price:</strong> ₹%.0f</p>
            </div>
            <p>Have a great trip!</p>
        </div>`,
		title,
		booking.CheckIn.Format("Jan 2, 2006"),
		booking.CheckOut.Format("Jan 2, 2006"),
		booking.Guests,
		booking.TotalPrice,
	)
}
