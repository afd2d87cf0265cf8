package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/mailer"
	"hotel/infras/otel"
	"hotel/internal/domains/notification/model"
	"hotel/internal/domains/notification/template"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

// Notifier hands notifications to the configured driver. Notify never blocks the caller and
// never reports failures back; they are logged.
type Notifier interface {
	Notify(ctx context.Context, notification model.Notification)
}

// Deliverer renders and mails one notification.
type Deliverer interface {
	Deliver(ctx context.Context, notification model.Notification) error
}

type publishFunc func(ctx context.Context, notification model.Notification) error

type notifierImpl struct {
	publish publishFunc
	driver  string
}

// NewNotifier picks the driver configured under NOTIFICATION_DRIVER.
func NewNotifier(cfg *config.Config, client kafka.Client, deliverer Deliverer) Notifier {
	n := &notifierImpl{driver: cfg.Notification.Driver}

	switch cfg.Notification.Driver {
	case model.DriverKafka:
		topic := cfg.Kafka.Topics.Notification

		n.publish = func(ctx context.Context, notification model.Notification) error {
			return client.SendMessages(ctx, topic, kafka.Message{Key: notification.Recipient, Value: notification}) //nolint:wrapcheck
		}
	case model.DriverDirect:
		n.publish = deliverer.Deliver
	default:
		n.driver = model.DriverLog
		n.publish = func(_ context.Context, notification model.Notification) error {
			log.Info().
				Str("template", notification.Template).
				Str("recipient", notification.Recipient).
				Interface("data", notification.Data).
				Msg("notification")

			return nil
		}
	}

	log.Info().Str("driver", n.driver).Msg("Notifier initialized")

	return n
}

func (n *notifierImpl) Notify(ctx context.Context, notification model.Notification) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := n.publish(c, notification); err != nil {
			log.Error().
				Err(err).
				Str("driver", n.driver).
				Str("template", notification.Template).
				Str("recipient", notification.Recipient).
				Msg("failed to dispatch notification")
		}
	}()
}

type delivererImpl struct {
	renderer template.Renderer
	mailer   mailer.Mailer
	otel     otel.Otel
}

func NewDeliverer(renderer template.Renderer, mailer mailer.Mailer, otel otel.Otel) Deliverer {
	return &delivererImpl{
		renderer: renderer,
		mailer:   mailer,
		otel:     otel,
	}
}

func (d *delivererImpl) Deliver(ctx context.Context, notification model.Notification) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Deliver")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"template":  notification.Template,
		"recipient": notification.Recipient,
	})

	subject, body, err := d.renderer.Render(notification)
	if err != nil {
		return fmt.Errorf("failed to render notification: %w", err)
	}

	if err = d.mailer.Send(ctx, mailer.Mail{To: []string{notification.Recipient}, Subject: subject, Text: body}); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	log.Info().Str("template", notification.Template).Str("recipient", notification.Recipient).Msg("notification delivered")

	return nil
}
