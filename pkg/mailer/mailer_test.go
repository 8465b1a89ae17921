package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mail "github.com/wneessen/go-mail"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "missing host", cfg: Config{Username: "u", Password: "p"}, wantErr: true},
		{name: "missing credentials", cfg: Config{Host: "smtp.example.com"}, wantErr: true},
		{name: "defaults applied", cfg: Config{Host: "smtp.example.com", Username: "me@example.com", Password: "p"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultPort, tt.cfg.Port)
			assert.Equal(t, "me@example.com", tt.cfg.From)
			assert.Equal(t, DefaultTimeout, tt.cfg.Timeout)
		})
	}
}

func TestBuild(t *testing.T) {
	m := &mailerImpl{cfg: Config{From: "me@example.com"}}

	email, err := m.build(Message{
		To:      []string{"a@example.com"},
		Cc:      []string{"b@example.com"},
		Subject: "Hi",
		Body:    "Hello",
	})
	require.NoError(t, err)

	rcpts, err := email.GetRecipients()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, rcpts)
	assert.Equal(t, []string{"Hi"}, email.GetGenHeader(mail.HeaderSubject))

	_, err = m.build(Message{Subject: "Hi"})
	assert.Error(t, err)

	_, err = m.build(Message{To: []string{"not an address"}})
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestSend_ConnectionRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	m, err := New(Config{
		Host:     "127.0.0.1",
		Port:     port,
		Username: "me@example.com",
		Password: "secret",
		Timeout:  time.Second,
	})
	require.NoError(t, err)

	err = m.Send(context.Background(), Message{To: []string{"a@example.com"}, Subject: "Hi", Body: "Hello"})
	assert.ErrorIs(t, err, ErrUnreachable)
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "auth reply code",
			err:  fmt.Errorf("SMTP AUTH failed: %w", &textproto.Error{Code: 535, Msg: "5.7.8 bad credentials"}),
			want: ErrAuth,
		},
		{
			name: "auth message only",
			err:  errors.New("dial failed: SMTP AUTH failed: unsupported mechanism"),
			want: ErrAuth,
		},
		{
			name: "mailbox unavailable",
			err:  &textproto.Error{Code: 550, Msg: "5.1.1 no such user"},
			want: ErrRejected,
		},
		{
			name: "rcpt to send error",
			err:  &mail.SendError{Reason: mail.ErrSMTPRcptTo},
			want: ErrRejected,
		},
		{
			name: "deadline",
			err:  fmt.Errorf("dial failed: %w", context.DeadlineExceeded),
			want: ErrTimeout,
		},
		{
			name: "network timeout",
			err:  &net.OpError{Op: "read", Net: "tcp", Err: timeoutErr{}},
			want: ErrTimeout,
		},
		{
			name: "connection refused",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
			want: ErrUnreachable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	plain := errors.New("something else")
	assert.Equal(t, plain, classify(plain))
	assert.NoError(t, classify(nil))
}
