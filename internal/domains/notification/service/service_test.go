package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/mailer"
	mailerMocks "hotel/infras/mailer/mocks"
	otelMocks "hotel/infras/otel/mocks"
	notificationMocks "hotel/internal/domains/notification/mocks"
	"hotel/internal/domains/notification/model"
	"hotel/internal/domains/notification/service"
	"hotel/internal/domains/notification/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotification() model.Notification {
	return model.Notification{
		Template:  model.TemplateBookingConfirmed,
		Recipient: "maria@example.com",
		Data:      map[string]string{"booking_id": "b-1", "room_number": "101", "client_name": "Maria"},
	}
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not dispatched")
	}
}

func TestNotifier_Kafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Notification.Driver = model.DriverKafka
	cfg.Kafka.Topics.Notification = "hotel.notifications"

	done := make(chan struct{})

	client.EXPECT().SendMessages(gomock.Any(), "hotel.notifications", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, messages ...kafka.Message) error {
			defer close(done)

			assert.NoError(t, ctx.Err())
			if assert.Len(t, messages, 1) {
				assert.Equal(t, "maria@example.com", messages[0].Key)
				assert.Equal(t, newNotification(), messages[0].Value)
			}

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	service.NewNotifier(cfg, client, nil).Notify(ctx, newNotification())
	cancel()

	waitFor(t, done)
}

func TestNotifier_DirectSwallowsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	deliverer := notificationMocks.NewMockDeliverer(ctrl)

	cfg := &config.Config{}
	cfg.Notification.Driver = model.DriverDirect

	done := make(chan struct{})

	deliverer.EXPECT().Deliver(gomock.Any(), newNotification()).
		DoAndReturn(func(context.Context, model.Notification) error {
			close(done)

			return errors.New("smtp unavailable")
		})

	service.NewNotifier(cfg, nil, deliverer).Notify(context.Background(), newNotification())

	waitFor(t, done)
}

func TestDeliverer_Deliver(t *testing.T) {
	t.Run("renders and mails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mail := mailerMocks.NewMockMailer(ctrl)

		mail.EXPECT().Send(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m mailer.Mail) error {
				assert.Equal(t, []string{"maria@example.com"}, m.To)
				assert.Equal(t, "Booking confirmed for room 101", m.Subject)
				assert.Contains(t, m.Text, "Hello Maria")

				return nil
			})

		err := service.NewDeliverer(template.New(), mail, otelMocks.NewOtel()).Deliver(context.Background(), newNotification())
		require.NoError(t, err)
	})

	t.Run("unknown template is not mailed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mail := mailerMocks.NewMockMailer(ctrl)

		notification := newNotification()
		notification.Template = "welcome"

		err := service.NewDeliverer(template.New(), mail, otelMocks.NewOtel()).Deliver(context.Background(), notification)
		assert.ErrorIs(t, err, model.ErrUnknownTemplate)
	})
}
