package worker

import (
	"context"
	"errors"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/internal/domains/notification/model"
	"hotel/internal/domains/notification/service"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Worker consumes the notification topic and delivers every message by mail.
type Worker struct {
	Config    *config.Config
	Client    kafka.Client
	Deliverer service.Deliverer
}

func New(cfg *config.Config, client kafka.Client, deliverer service.Deliverer) *Worker {
	return &Worker{
		Config:    cfg,
		Client:    client,
		Deliverer: deliverer,
	}
}

// Run blocks until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) {
	topic := w.Config.Kafka.Topics.Notification

	log.Info().Str("topic", topic).Str("group", w.Config.Kafka.ConsumerGroup).Msg("Notification worker started.")

	w.Client.Consume(ctx, w.Config.Kafka.ConsumerGroup, topic, w.Handle)

	log.Info().Msg("Notification worker stopped.")
}

// Handle delivers one message. Undecodable messages and unknown templates are dropped.
func (w *Worker) Handle(ctx context.Context, message kafkaGo.Message) {
	notification, err := kafka.DecodeKafkaMessage[model.Notification](message)
	if err != nil {
		log.Error().Err(err).Str("key", string(message.Key)).Msg("dropping undecodable notification")

		return
	}

	if err := w.Deliverer.Deliver(ctx, notification); err != nil {
		event := log.Error().Err(err).Str("template", notification.Template).Str("recipient", notification.Recipient)

		if errors.Is(err, model.ErrUnknownTemplate) {
			event.Msg("dropping notification with unknown template")

			return
		}

		event.Msg("failed to deliver notification")
	}
}
