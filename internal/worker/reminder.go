package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gaming-zone-booking/internal/domain/booking"
	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/infra/cache"
	"gaming-zone-booking/internal/pkg/clock"
	"gaming-zone-booking/internal/usecase/shared"
)

const reminderLockName = "reminder-scheduler"

type Locker interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (cache.Releaser, error)
}

// ReminderScheduler queues a reminder for every confirmed booking dated
// tomorrow, once per booking. With several instances only the lock holder
// scans.
type ReminderScheduler struct {
	uow       shared.UnitOfWork
	locker    Locker
	loc       *time.Location
	clock     clock.Clock
	interval  time.Duration
	batchSize int32
	logger    *slog.Logger
}

func NewReminderScheduler(
	uow shared.UnitOfWork,
	locker Locker,
	loc *time.Location,
	clk clock.Clock,
	interval time.Duration,
	batchSize int32,
	logger *slog.Logger,
) *ReminderScheduler {
	return &ReminderScheduler{
		uow:       uow,
		locker:    locker,
		loc:       loc,
		clock:     clk,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (s *ReminderScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if n, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("reminder pass failed", "error", err.Error())
		} else if n > 0 {
			s.logger.Info("reminders queued", "count", n)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce queues reminders in batches until none are left and returns the
// total queued.
func (s *ReminderScheduler) RunOnce(ctx context.Context) (int, error) {
	lease, err := s.locker.Acquire(ctx, reminderLockName, s.interval)
	if err != nil {
		if errors.Is(err, cache.ErrLockNotAcquired) {
			return 0, nil
		}
		return 0, err
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("reminder lock release failed", "error", err.Error())
		}
	}()

	now := s.clock.Now()
	tomorrow := booking.DateOf(now.In(s.loc)).AddDays(1)

	total := 0
	for {
		n, err := s.queueBatch(ctx, tomorrow, now)
		total += n
		if err != nil {
			return total, err
		}
		if n < int(s.batchSize) {
			return total, nil
		}
	}
}

func (s *ReminderScheduler) queueBatch(ctx context.Context, date booking.Date, now time.Time) (int, error) {
	queued := 0
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		queued = 0
		due, err := tx.Bookings().ListRemindable(ctx, tx.DB(), date, s.batchSize)
		if err != nil {
			return err
		}
		for _, b := range due {
			if err := shared.EnqueueNotification(ctx, tx, notification.KindReminder, b, now); err != nil {
				return err
			}
			b.MarkReminderQueued(now)
			if err := tx.Bookings().MarkReminderQueued(ctx, tx.DB(), b); err != nil {
				return err
			}
			queued++
		}
		return nil
	})
	return queued, err
}
