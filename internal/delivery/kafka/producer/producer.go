package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	kafka "github.com/vogiaan1904/smartq-queue/internal/delivery/kafka"
	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

type Producer interface {
	PublishBookingCreated(ctx context.Context, event kafka.BookingCreatedEvent) error
	PublishServingAdvanced(ctx context.Context, event kafka.ServingAdvancedEvent) error
	PublishBookingArchived(ctx context.Context, event kafka.BookingArchivedEvent) error
	Close() error
}

type implProducer struct {
	l    logger.Logger
	prod sarama.SyncProducer
}

func NewProducer(prod sarama.SyncProducer, l logger.Logger) Producer {
	return &implProducer{
		l:    l,
		prod: prod,
	}
}

func (p *implProducer) PublishBookingCreated(ctx context.Context, event kafka.BookingCreatedEvent) error {
	event.Timestamp = time.Now()
	return p.publish(kafka.TopicBookingCreated, event.ClinicID, event)
}

func (p *implProducer) PublishServingAdvanced(ctx context.Context, event kafka.ServingAdvancedEvent) error {
	event.Timestamp = time.Now()
	return p.publish(kafka.TopicServingAdvanced, event.ClinicID, event)
}

func (p *implProducer) PublishBookingArchived(ctx context.Context, event kafka.BookingArchivedEvent) error {
	event.Timestamp = time.Now()
	return p.publish(kafka.TopicBookingArchived, event.ClinicID, event)
}

func (p *implProducer) publish(topic, key string, event any) error {
	val, err := json.Marshal(event)
	if err != nil {
		p.l.Error("delivery.kafka.producer.publish", "topic", topic, "error", err)
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key), // Partition by clinic_id for ordering
		Value: sarama.ByteEncoder(val),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("timestamp"),
				Value: []byte(time.Now().Format(time.RFC3339)),
			},
		},
	}

	partition, offset, err := p.prod.SendMessage(msg)
	if err != nil {
		p.l.Error("Failed to send kafka message", "topic", topic, "error", err)
		return err
	}

	p.l.Debug("Kafka message sent",
		"topic", topic,
		"partition", partition,
		"offset", offset,
		"key", key,
	)

	return nil
}

func (p *implProducer) Close() error {
	return p.prod.Close()
}
