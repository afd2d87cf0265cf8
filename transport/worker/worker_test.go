package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	notificationMocks "hotel/internal/domains/notification/mocks"
	"hotel/internal/domains/notification/model"
	"hotel/transport/worker"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWorker(t *testing.T) (*worker.Worker, *kafkaMocks.MockClient, *notificationMocks.MockDeliverer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)
	deliverer := notificationMocks.NewMockDeliverer(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "hotel-notification"
	cfg.Kafka.Topics.Notification = "hotel.notifications"

	return worker.New(cfg, client, deliverer), client, deliverer
}

func message(t *testing.T, notification model.Notification) kafkaGo.Message {
	t.Helper()

	value, err := json.Marshal(notification)
	require.NoError(t, err)

	return kafkaGo.Message{Key: []byte(notification.Recipient), Value: value}
}

func TestWorker_Run(t *testing.T) {
	w, client, _ := newWorker(t)

	client.EXPECT().Consume(gomock.Any(), "hotel-notification", "hotel.notifications", gomock.Any())

	w.Run(context.Background())
}

func TestWorker_Handle(t *testing.T) {
	notification := model.Notification{
		Template:  model.TemplateBookingConfirmed,
		Recipient: "ana@example.com",
		Data:      map[string]string{"booking_id": "booking-1"},
	}
	unknown := model.Notification{Template: "welcome", Recipient: "ana@example.com"}

	tests := []struct {
		name    string
		message func(t *testing.T) kafkaGo.Message
		expect  func(d *notificationMocks.MockDeliverer)
	}{
		{
			name:    "delivers",
			message: func(t *testing.T) kafkaGo.Message { return message(t, notification) },
			expect: func(d *notificationMocks.MockDeliverer) {
				d.EXPECT().Deliver(gomock.Any(), notification).Return(nil)
			},
		},
		{
			name:    "unknown template is dropped",
			message: func(t *testing.T) kafkaGo.Message { return message(t, unknown) },
			expect: func(d *notificationMocks.MockDeliverer) {
				d.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(fmt.Errorf("failed to render notification: %w", model.ErrUnknownTemplate))
			},
		},
		{
			name:    "mailer failure is logged",
			message: func(t *testing.T) kafkaGo.Message { return message(t, notification) },
			expect: func(d *notificationMocks.MockDeliverer) {
				d.EXPECT().Deliver(gomock.Any(), notification).Return(errors.New("smtp: connection refused"))
			},
		},
		{
			name:    "garbage is dropped before delivery",
			message: func(*testing.T) kafkaGo.Message { return kafkaGo.Message{Value: []byte("{not json")} },
			expect:  func(*notificationMocks.MockDeliverer) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, deliverer := newWorker(t)
			tt.expect(deliverer)

			w.Handle(context.Background(), tt.message(t))
		})
	}
}
