package consumer

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"

	"github.com/vogiaan1904/smartq-queue/internal/delivery/kafka"
)

func (c *Consumer) HandleTokenAdvanced(ctx context.Context, message *sarama.ConsumerMessage) error {
	var e kafka.TokenAdvancedEvent
	if err := json.Unmarshal(message.Value, &e); err != nil {
		c.l.Error("delivery.kafka.consumer.HandleTokenAdvanced", "error", err)
		return err
	}

	if err := c.bkSvc.AdvanceServingToken(ctx, e.ServingToken); err != nil {
		c.l.Error("delivery.kafka.consumer.HandleTokenAdvanced", "error", err)
		return err
	}

	return nil
}
