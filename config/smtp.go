package config

import (
	"os"
	"strconv"
)

// SMTPConfig holds the mail relay settings. It is built once at startup and
// passed to the notification mailer; it is never mutated afterwards.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
}

func GetSMTPConfig() *SMTPConfig {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	username := os.Getenv("SMTP_USERNAME")
	from := os.Getenv("FROM_EMAIL")
	if from == "" {
		from = username
	}

	return &SMTPConfig{
		Host:      host,
		Port:      port,
		Username:  username,
		Password:  os.Getenv("SMTP_PASSWORD"),
		FromEmail: from,
	}
}
