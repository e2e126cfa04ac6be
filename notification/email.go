package notification

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"

	"gopkg.in/gomail.v2"

	"github.com/assemble-platform/api-go/config"
)

// Mailer delivers verification emails through the configured SMTP relay. Its
// methods report success as a bool and never panic past this boundary;
// failures are logged server-side.
type Mailer struct {
	cfg *config.SMTPConfig
}

func NewMailer(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// GenerateOTP returns a 6-digit numeric one-time code.
func GenerateOTP() string {
	const digits = 6
	otp := make([]byte, digits)
	for i := range otp {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// crypto/rand failing means the process is in serious trouble
			// anyway; fall back to a fixed digit rather than crash a request.
			otp[i] = '0'
			continue
		}
		otp[i] = byte('0' + n.Int64())
	}
	return string(otp)
}

// SendOTPEmail sends a plain+HTML verification message carrying the one-time
// code. It returns false on any failure.
func (m *Mailer) SendOTPEmail(toEmail, otp, username string) bool {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		log.Printf("SMTP credentials not configured")
		return false
	}

	text := fmt.Sprintf(`Hi %s,

Welcome to Assemble! Please verify your email address using the OTP below:

OTP: %s

This OTP will expire in 10 minutes.

If you didn't request this, please ignore this email.

Best regards,
Assemble Team
`, username, otp)

	html := fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h2 style="color: #4F46E5;">Welcome to Assemble!</h2>
		<p>Hi %s,</p>
		<p>Please verify your email address using the OTP below:</p>
		<div style="background: #F3F4F6; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0;">
			<h1 style="color: #4F46E5; font-size: 36px; margin: 0; letter-spacing: 8px;">%s</h1>
		</div>
		<p style="color: #666; font-size: 14px;">This OTP will expire in 10 minutes.</p>
		<p style="color: #666; font-size: 14px;">If you didn't request this, please ignore this email.</p>
		<hr style="border: none; border-top: 1px solid #E5E7EB; margin: 30px 0;">
		<p style="color: #999; font-size: 12px;">Best regards,<br>Assemble Team</p>
	</div>
</body>
</html>`, username, otp)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.FromEmail)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Verify Your Email - Assemble Platform")
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Failed to send OTP email: %v", err)
		return false
	}

	log.Printf("OTP email sent successfully to %s", toEmail)
	return true
}
