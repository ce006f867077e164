package worker

import (
	"context"
	"log/slog"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/infra/messaging"
)

// Notifier drains a broker consumer into the mail sender.
type Notifier struct {
	consumer messaging.Consumer
	sender   notification.Sender
	recorder NotificationRecorder
	logger   *slog.Logger
}

func NewNotifier(consumer messaging.Consumer, sender notification.Sender, recorder NotificationRecorder, logger *slog.Logger) *Notifier {
	return &Notifier{consumer: consumer, sender: sender, recorder: recorder, logger: logger}
}

func (n *Notifier) Run(ctx context.Context) {
	err := n.consumer.Run(ctx, n.Handle)
	if err != nil && ctx.Err() == nil {
		n.logger.Error("notification consumer stopped", "error", err.Error())
	}
}

func (n *Notifier) Handle(ctx context.Context, msg notification.Message) error {
	if err := n.sender.Send(ctx, msg); err != nil {
		n.recorder.RecordNotification(string(msg.Kind), "send_failed")
		return err
	}
	n.recorder.RecordNotification(string(msg.Kind), "emailed")
	n.logger.Info("notification emailed", "message_id", msg.ID.String(), "kind", string(msg.Kind))
	return nil
}

func (n *Notifier) Close() error {
	return n.consumer.Close()
}
