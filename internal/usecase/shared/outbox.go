package shared

import (
	"context"
	"time"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/pkg/errs"
)

// EnqueueNotification writes the message for b into the outbox of tx.
func EnqueueNotification(ctx context.Context, tx Tx, kind notification.Kind, b *booking.Booking, runAt time.Time) error {
	msg, err := notification.Compose(kind, b)
	if err != nil {
		return errs.Wrapf(err, "compose %s notification", kind)
	}
	payload, err := msg.Encode()
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), notification.ChannelEmail, string(kind), payload, runAt)
}
