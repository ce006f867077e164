package bootstrap

import (
	"context"
	"log/slog"

	"gaming-zone-booking/internal/domain/notification"
	"gaming-zone-booking/internal/infra/mailer"
	"gaming-zone-booking/internal/infra/messaging"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewRenderer,
		NewSender,
		NewTransport,
	),
)

func NewRenderer(cfg config.Config) (*mailer.Renderer, error) {
	return mailer.NewRenderer(cfg.Mail.Brand, cfg.Booking.CancellationCutoff)
}

// NewSender mails through SMTP, or only logs the rendered mail when SMTP_HOST is empty.
func NewSender(cfg config.Config, renderer *mailer.Renderer, logger *slog.Logger) notification.Sender {
	if cfg.Mail.SMTPHost == "" {
		logger.Info("smtp disabled, notifications are logged")
		return mailer.NewLogSender(renderer, logger)
	}
	return mailer.NewSMTPSender(cfg.Mail, renderer)
}

type TransportResult struct {
	fx.Out

	Publisher notification.Publisher
	// Consumer is nil for the direct driver.
	Consumer messaging.Consumer
}

func NewTransport(lc fx.Lifecycle, cfg config.Config, sender notification.Sender, logger *slog.Logger) (TransportResult, error) {
	driver := cfg.Broker.NormalizedDriver()
	logger.Info("notification transport selected", "driver", driver)

	switch driver {
	case messaging.DriverDirect, "":
		return TransportResult{Publisher: messaging.NewDirectPublisher(sender)}, nil

	case messaging.DriverRabbitMQ:
		pub := messaging.NewRabbitPublisher(cfg.Broker.RabbitMQURL, cfg.Broker.RabbitMQQueue)
		cons := messaging.NewRabbitConsumer(cfg.Broker.RabbitMQURL, cfg.Broker.RabbitMQQueue, logger)
		appendClose(lc, pub.Close)
		return TransportResult{Publisher: pub, Consumer: cons}, nil

	case messaging.DriverKafka:
		pub, err := messaging.NewKafkaPublisher(cfg.Broker.KafkaBrokers, cfg.Broker.KafkaTopic, logger)
		if err != nil {
			return TransportResult{}, err
		}
		cons, err := messaging.NewKafkaConsumer(cfg.Broker.KafkaBrokers, cfg.Broker.KafkaGroupID, cfg.Broker.KafkaTopic, logger)
		if err != nil {
			_ = pub.Close()
			return TransportResult{}, err
		}
		appendClose(lc, pub.Close)
		return TransportResult{Publisher: pub, Consumer: cons}, nil

	default:
		return TransportResult{}, errs.Newf("unknown BROKER_DRIVER %q", cfg.Broker.Driver)
	}
}

func appendClose(lc fx.Lifecycle, closeFn func() error) {
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closeFn()
		},
	})
}
