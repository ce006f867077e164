//go:build unit

package worker_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/infra/cache"
	"gaming-zone-booking/internal/infra/messaging"
	"gaming-zone-booking/tests/common/builder"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, msg notification.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type mockSender struct{ mock.Mock }

func (m *mockSender) Send(ctx context.Context, msg notification.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type mockRecorder struct{ mock.Mock }

func (m *mockRecorder) RecordNotification(kind, status string) {
	m.Called(kind, status)
}

type mockLocker struct{ mock.Mock }

func (m *mockLocker) Acquire(ctx context.Context, name string, ttl time.Duration) (cache.Releaser, error) {
	args := m.Called(ctx, name, ttl)
	r, _ := args.Get(0).(cache.Releaser)
	return r, args.Error(1)
}

type mockLease struct{ mock.Mock }

func (m *mockLease) Release(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// fakeConsumer replays its messages through the handler once.
type fakeConsumer struct {
	messages []notification.Message
	results  []error
	closed   bool
}

func (c *fakeConsumer) Run(ctx context.Context, handle messaging.Handler) error {
	for _, m := range c.messages {
		c.results = append(c.results, handle(ctx, m))
	}
	return nil
}

func (c *fakeConsumer) Close() error {
	c.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func composed(t *testing.T, kind notification.Kind) (notification.Message, []byte) {
	t.Helper()
	msg, err := notification.Compose(kind, builder.NewBookingBuilder().BuildDomain())
	require.NoError(t, err)
	payload, err := msg.Encode()
	require.NoError(t, err)
	return msg, payload
}
