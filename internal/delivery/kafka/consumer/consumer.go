package consumer

import (
	"context"
	"sync"

	"github.com/IBM/sarama"

	"github.com/vogiaan1904/smartq-queue/internal/delivery/kafka"
	"github.com/vogiaan1904/smartq-queue/internal/service"
	"github.com/vogiaan1904/smartq-queue/pkg/logger"
)

// Consumer feeds serving token updates from the staff desk into the booking
// service. It implements sarama.ConsumerGroupHandler.
type Consumer struct {
	consGr sarama.ConsumerGroup
	bkSvc  service.BookingService
	l      logger.Logger
	wg     sync.WaitGroup
}

func NewConsumer(
	consGr sarama.ConsumerGroup,
	bkSvc service.BookingService,
	l logger.Logger,
) *Consumer {
	return &Consumer{
		consGr: consGr,
		bkSvc:  bkSvc,
		l:      l,
	}
}

func (c *Consumer) processMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	switch msg.Topic {
	case kafka.TopicTokenAdvanced:
		return c.HandleTokenAdvanced(ctx, msg)
	default:
		c.l.Warn("Unknown topic", "topic", msg.Topic)
		return nil
	}
}

func (c *Consumer) Start(ctx context.Context) error {
	topics := []string{kafka.TopicTokenAdvanced}
	c.wg.Go(func() {
		for {
			if err := c.consGr.Consume(ctx, topics, c); err != nil {
				c.l.Error("delivery.kafka.consumer.Start", "error", err)
			}

			if ctx.Err() != nil {
				c.l.Info("Consumer loop stopped", "reason", ctx.Err())
				return
			}
		}
	})

	// Handle errors
	c.wg.Go(func() {
		for err := range c.consGr.Errors() {
			c.l.Error("delivery.kafka.consumer.Start", "error", err)
		}
	})

	c.l.Info("Consumer is consuming topics", "topics", topics)
	return nil
}

func (c *Consumer) Close() error {
	if err := c.consGr.Close(); err != nil {
		return err
	}

	c.wg.Wait()
	return nil
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	c.l.Debug("Consumer group session started")
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	c.l.Debug("Consumer group session ended")
	return nil
}

func (c *Consumer) ConsumeClaim(ss sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			if err := c.processMessage(ss.Context(), message); err != nil {
				c.l.Error("delivery.kafka.consumer.ConsumeClaim",
					"error", err,
					"topic", message.Topic,
					"offset", message.Offset,
				)
				continue
			}

			ss.MarkMessage(message, "")

		case <-ss.Context().Done():
			return nil
		}
	}
}
