package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assemble-platform/api-go/config"
)

func TestGenerateOTP(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", otp)
		}
		seen[otp] = true
	}
	// 50 draws from a million values colliding every time would mean the
	// generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestSendOTPEmailWithoutCredentials(t *testing.T) {
	mailer := NewMailer(&config.SMTPConfig{Host: "localhost", Port: 2525})

	ok := mailer.SendOTPEmail("someone@example.com", "123456", "someone")
	assert.False(t, ok)
}
