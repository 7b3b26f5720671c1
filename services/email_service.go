package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"pesisir-api/config"
	"pesisir-api/models"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	return &EmailService{
		config: cfg,
		dialer: dialer,
	}
}

// SendVolunteerConfirmation mails a registration confirmation to a newly
// registered volunteer. Callers fire this in a goroutine; a failed send never
// fails the registration.
func (es *EmailService) SendVolunteerConfirmation(volunteer *models.Volunteer, activity *models.Activity) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", volunteer.VolunteerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Pesisir - Registration for %s", activity.ActivityName))

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Registration Confirmation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; background: #0d6efd; color: white; padding: 20px; border-radius: 10px 10px 0 0; }
        .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 10px 10px; }
        .detail { background: #e9ecef; padding: 15px; border-radius: 8px; margin: 15px 0; }
        .footer { text-align: center; margin-top: 20px; color: #666; font-size: 14px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Pesisir</h1>
            <p>Volunteer Registration</p>
        </div>
        <div class="content">
            <h2>Hello %s!</h2>
            <p>Thank you for registering as a volunteer. Your registration has been received.</p>
            <div class="detail">
                <p><strong>Activity:</strong> %s</p>
                <p><strong>Date:</strong> %s %s</p>
            </div>
            <p>We will verify your payment slip and get back to you before the activity starts.</p>
        </div>
        <div class="footer">
            <p>Pesisir Community Platform</p>
        </div>
    </div>
</body>
</html>`,
		volunteer.VolunteerName,
		activity.ActivityName,
		activity.ActivityDate,
		activity.ActivityTime,
	)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	fmt.Printf("📧 Sent volunteer confirmation to %s\n", volunteer.VolunteerEmail)
	return nil
}
