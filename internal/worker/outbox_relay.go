package worker

import (
	"context"
	"log/slog"
	"time"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/pkg/clock"
	"gaming-zone-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRecorder interface {
	RecordNotification(kind, status string)
}

type RelayConfig struct {
	Interval    time.Duration
	BatchSize   int32
	MaxAttempts int32
	// Backoff is the delay before the first retry; it doubles per attempt.
	Backoff time.Duration
}

// OutboxRelay moves due notification jobs from the outbox to the publisher.
// Delivery is at least once: a crash between publish and commit resends.
// A transaction retry inside one pass reuses the outcome already reached for
// a job instead of publishing it again.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher notification.Publisher
	recorder  NotificationRecorder
	clock     clock.Clock
	cfg       RelayConfig
	logger    *slog.Logger
}

func NewOutboxRelay(
	uow shared.UnitOfWork,
	publisher notification.Publisher,
	recorder NotificationRecorder,
	clk clock.Clock,
	cfg RelayConfig,
	logger *slog.Logger,
) *OutboxRelay {
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		recorder:  recorder,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
			r.logger.Error("outbox relay pass failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce claims one batch and returns how many jobs were processed.
// A retried transaction replays the outcome already decided for a job instead
// of publishing it again. Delivery stays at-least-once: a crash between publish
// and commit leaves the job queued for the next tick.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	processed := 0
	outcomes := make(map[uuid.UUID]shared.NotificationJob)
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		processed = 0
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}
		for i := range jobs {
			job := &jobs[i]
			if done, ok := outcomes[job.ID]; ok {
				*job = done
			} else {
				r.deliver(ctx, job, now)
				outcomes[job.ID] = *job
			}
			if err := tx.Notifications().UpdateStatus(ctx, tx.DB(), *job); err != nil {
				return err
			}
			processed++
		}
		return nil
	})
	return processed, err
}

func (r *OutboxRelay) deliver(ctx context.Context, job *shared.NotificationJob, now time.Time) {
	msg, err := notification.Decode(job.Payload)
	if err != nil {
		// a payload that cannot decode never will
		job.Retry(err, now, r.cfg.Backoff, job.Attempts+1)
		r.record(job)
		r.logger.Error("dropping malformed notification job", "job_id", job.ID.String(), "error", err.Error())
		return
	}

	if err := r.publisher.Publish(ctx, msg); err != nil {
		job.Retry(err, now, r.cfg.Backoff, r.cfg.MaxAttempts)
		r.record(job)
		r.logger.Warn("notification delivery failed",
			"job_id", job.ID.String(),
			"topic", job.Topic,
			"attempts", job.Attempts,
			"status", job.Status,
			"error", err.Error())
		return
	}

	job.Delivered()
	r.record(job)
	r.logger.Debug("notification delivered", "job_id", job.ID.String(), "topic", job.Topic)
}

func (r *OutboxRelay) record(job *shared.NotificationJob) {
	r.recorder.RecordNotification(job.Topic, job.Status)
}
