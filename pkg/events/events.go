package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// Type тип события жизненного цикла записи
type Type string

const (
	AppointmentCreated       Type = "appointment.created"
	AppointmentUpdated       Type = "appointment.updated"
	AppointmentStatusChanged Type = "appointment.status_changed"
	AppointmentDeleted       Type = "appointment.deleted"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации продьюсера
	ErrInvalidConfig = errors.New("events: invalid publisher config")

	// ErrPublish возвращается при ошибке отправки события
	ErrPublish = errors.New("events: failed to publish event")
)

// Event событие, публикуемое после успешной записи в хранилище
type Event struct {
	Type          Type      `json:"type"`
	AppointmentID string    `json:"appointmentId"`
	Date          string    `json:"date,omitempty"`
	StartTime     string    `json:"startTime,omitempty"`
	Status        string    `json:"status,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// Publisher публикует события
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher используется, когда публикация событий выключена
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

// messageWriter часть kafka.Writer, нужная продьюсеру
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события в топик Kafka.
// Ключ сообщения равен ID записи: события одной записи идут в одну партицию.
type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("%w: at least one broker is required", ErrInvalidConfig)
	}
	if topic == "" {
		return nil, fmt.Errorf("%w: topic cannot be empty", ErrInvalidConfig)
	}

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: 50 * time.Millisecond,
		},
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, event.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.AppointmentID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s id=%s: %v", ErrPublish, event.Type, event.AppointmentID, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
