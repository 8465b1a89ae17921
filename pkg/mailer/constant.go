package mailer

import "time"

const (
	DefaultPort    = 587
	DefaultTimeout = 20 * time.Second
)
