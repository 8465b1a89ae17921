package mailer

import (
	"errors"
	"time"
)

// Config holds SMTP settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// UseTLS requires STARTTLS. When false TLS is used only if the server offers it.
	UseTLS  bool
	Timeout time.Duration
}

// Validate checks the settings needed to send.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("smtp host is required")
	}
	if c.Username == "" || c.Password == "" {
		return errors.New("smtp credentials are required")
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.From == "" {
		c.From = c.Username
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	return nil
}

// Message is one plain text email.
type Message struct {
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string
}

type mailerImpl struct {
	cfg Config
}
