//go:build unit

package mailer

import (
	"context"
	"io"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/errs"
	"gaming-zone-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessage(t *testing.T, kind notification.Kind) notification.Message {
	t.Helper()
	msg, err := notification.Compose(kind, builder.NewBookingBuilder().BuildDomain())
	require.NoError(t, err)
	return msg
}

func TestRender(t *testing.T) {
	r, err := NewRenderer("GameZone", 2*time.Hour)
	require.NoError(t, err)

	tests := []struct {
		kind notification.Kind
		want []string
	}{
		{
			kind: notification.KindConfirmation,
			want: []string{"Booking Confirmed!", "Test Player", "PS5 Station", "Tuesday, 10 March 2026", "18:00 (2 hrs)", "₹600", "Cold Coffee x2", "₹240", "₹840", "Paid Online", "up to 2 hours"},
		},
		{kind: notification.KindCancellation, want: []string{"PS5 Station", "NeonNexus Koramangala"}},
		{kind: notification.KindReminder, want: []string{"PS5 Station", "18:00"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			body, err := r.Render(newMessage(t, tt.kind))
			require.NoError(t, err)
			assert.Contains(t, body, "GameZone")
			for _, w := range tt.want {
				assert.Contains(t, body, w)
			}
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		msg := newMessage(t, notification.KindReminder)
		msg.Kind = "promo"
		_, err := r.Render(msg)
		assert.ErrorIs(t, err, notification.ErrUnknownKind)
	})
}

func TestSMTPSender(t *testing.T) {
	r, err := NewRenderer("GameZone", 2*time.Hour)
	require.NoError(t, err)
	cfg := config.MailConfig{SMTPHost: "mail.local", SMTPPort: "2525", From: "noreply@gamezone.test"}

	t.Run("builds a html message for the recipient", func(t *testing.T) {
		s := NewSMTPSender(cfg, r)
		var gotAddr string
		var gotTo []string
		var gotBody string
		s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotTo, gotBody = addr, to, string(msg)
			return nil
		}
		msg := newMessage(t, notification.KindConfirmation)

		require.NoError(t, s.Send(context.Background(), msg))

		assert.Equal(t, "mail.local:2525", gotAddr)
		assert.Equal(t, []string{"test@example.com"}, gotTo)
		assert.True(t, strings.HasPrefix(gotBody, "From: noreply@gamezone.test\r\n"))
		assert.Contains(t, gotBody, "Subject: Booking Confirmed - PS5 Station at NeonNexus Koramangala\r\n")
		assert.Contains(t, gotBody, "Content-Type: text/html")
	})

	t.Run("transport failure is returned", func(t *testing.T) {
		s := NewSMTPSender(cfg, r)
		s.send = func(string, smtp.Auth, string, []string, []byte) error { return errs.New("connection refused") }

		err := s.Send(context.Background(), newMessage(t, notification.KindReminder))

		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("cancelled context", func(t *testing.T) {
		s := NewSMTPSender(cfg, r)
		s.send = func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("send must not be called")
			return nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, s.Send(ctx, newMessage(t, notification.KindReminder)), context.Canceled)
	})
}

func TestLogSender(t *testing.T) {
	r, err := NewRenderer("GameZone", 2*time.Hour)
	require.NoError(t, err)
	s := NewLogSender(r, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, s.Send(context.Background(), newMessage(t, notification.KindCancellation)))
}
