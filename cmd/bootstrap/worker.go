package bootstrap

import (
	"context"
	"log/slog"
	"sync"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/infra/messaging"
	"gaming-zone-booking/internal/pkg/clock"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/usecase/shared"
	"gaming-zone-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxRelay,
		NewReminderScheduler,
	),
	fx.Invoke(startWorkers),
)

func NewOutboxRelay(
	uow shared.UnitOfWork,
	publisher notification.Publisher,
	recorder worker.NotificationRecorder,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *worker.OutboxRelay {
	return worker.NewOutboxRelay(uow, publisher, recorder, clk, worker.RelayConfig{
		Interval:    cfg.Worker.OutboxInterval,
		BatchSize:   cfg.Worker.OutboxBatchSize,
		MaxAttempts: cfg.Worker.OutboxMaxAttempt,
		Backoff:     cfg.Worker.OutboxBackoff,
	}, logger.With("component", "outbox_relay"))
}

func NewReminderScheduler(
	uow shared.UnitOfWork,
	locker worker.Locker,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *worker.ReminderScheduler {
	return worker.NewReminderScheduler(
		uow, locker, cfg.Booking.Location(), clk,
		cfg.Worker.ReminderInterval, cfg.Worker.OutboxBatchSize,
		logger.With("component", "reminder"),
	)
}

type workerParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Logger    *slog.Logger
	Relay     *worker.OutboxRelay
	Reminder  *worker.ReminderScheduler
	Consumer  messaging.Consumer
	Sender    notification.Sender
	Recorder  worker.NotificationRecorder
}

// startWorkers runs the background loops until shutdown. The notifier only
// runs when a broker sits between the relay and the sender.
func startWorkers(p workerParams) {
	if !p.Config.Worker.Enabled {
		p.Logger.Info("background workers disabled")
		return
	}

	runners := []func(context.Context){p.Relay.Run, p.Reminder.Run}
	var notifier *worker.Notifier
	if p.Consumer != nil {
		notifier = worker.NewNotifier(p.Consumer, p.Sender, p.Recorder, p.Logger.With("component", "notifier"))
		runners = append(runners, notifier.Run)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			for _, run := range runners {
				wg.Add(1)
				go func() {
					defer wg.Done()
					run(ctx)
				}()
			}
			p.Logger.Info("background workers started", "count", len(runners))
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()
			select {
			case <-done:
			case <-stopCtx.Done():
				p.Logger.Warn("workers did not stop before shutdown deadline")
			}
			if notifier != nil {
				return notifier.Close()
			}
			return nil
		},
	})
}
