package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthportal-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	queue    string
	messages []amqp091.Publishing
	err      error
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.queue = key
	f.messages = append(f.messages, msg)
	return nil
}

func TestPublishAppointmentBooked(t *testing.T) {
	event := &models.AppointmentBookedEvent{
		Event:         "appointment.booked",
		AppointmentID: "appt-1",
		OwnerID:       "patient-1",
		DoctorID:      "1",
		DoctorName:    "Dr. Michael Chen",
		Date:          "2025-01-10",
		Time:          "10:30",
		BookedAt:      time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}

	t.Run("Publishes persistent JSON to the queue", func(t *testing.T) {
		channel := &fakeChannel{}
		svc := &rabbitMQNotifier{Channel: channel, Queue: "appointments"}

		require.NoError(t, svc.PublishAppointmentBooked(context.Background(), event))

		require.Len(t, channel.messages, 1)
		msg := channel.messages[0]
		assert.Equal(t, "appointments", channel.queue)
		assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
		assert.Equal(t, "appt-1", msg.MessageId)

		var decoded models.AppointmentBookedEvent
		require.NoError(t, json.Unmarshal(msg.Body, &decoded))
		assert.Equal(t, *event, decoded)
	})

	t.Run("Wraps publish errors", func(t *testing.T) {
		svc := &rabbitMQNotifier{Channel: &fakeChannel{err: errors.New("channel closed")}, Queue: "appointments"}

		err := svc.PublishAppointmentBooked(context.Background(), event)

		assert.Error(t, err)
	})
}
