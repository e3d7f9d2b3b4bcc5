package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/m04kA/BarberShop-BookingService/internal/domain"
)

// messageWriter подмножество *kafka.Writer
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher публикует события о записях в один топик
// Ключ сообщения - id записи, чтобы события одной записи шли по порядку
type KafkaPublisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewKafkaPublisher создаёт синхронного писателя с подтверждением от лидера
func NewKafkaPublisher(brokers []string, topic string, writeTimeout time.Duration) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: writeTimeout,
	}

	return &KafkaPublisher{writer: writer, now: time.Now}
}

// Publish отправляет событие eventType со снимком записи
func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, appointment *domain.Appointment) error {
	msg, err := buildMessage(uuid.NewString(), eventType, p.now().UTC(), appointment)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s for appointment %s: %v", ErrPublish, eventType, appointment.ID, err)
	}
	return nil
}

// Close закрывает соединения с брокером
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func buildMessage(eventID, eventType string, occurredAt time.Time, appointment *domain.Appointment) (kafka.Message, error) {
	payload, err := json.Marshal(Envelope{
		EventID:     eventID,
		EventType:   eventType,
		OccurredAt:  occurredAt,
		Appointment: snapshot(appointment),
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return kafka.Message{
		Key:   []byte(appointment.ID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(eventID)},
			{Key: "event_type", Value: []byte(eventType)},
		},
	}, nil
}

// NoopPublisher используется, когда kafka выключена
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, *domain.Appointment) error { return nil }

func (NoopPublisher) Close() error { return nil }
