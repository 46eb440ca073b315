//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Producer=Producer"
package pulsar

import (
	"context"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/google/uuid"
)

const messageIDPropertyName = "message_id"

type (
	Message struct {
		ID      uuid.UUID
		Topic   string
		Key     string
		Payload []byte
	}

	Producer interface {
		Send(ctx context.Context, msg Message) error
	}
)

func (c *connection) Send(ctx context.Context, msg Message) error {
	producer, err := c.getOrCreateProducer(msg.Topic)
	if err != nil {
		return err
	}

	_, err = producer.Send(ctx, &pulsar.ProducerMessage{
		Payload:    msg.Payload,
		Key:        msg.Key,
		Properties: map[string]string{messageIDPropertyName: msg.ID.String()},
	})
	if err != nil {
		return fmt.Errorf("send message to %s: %w", msg.Topic, err)
	}

	return nil
}

func (c *connection) getOrCreateProducer(topic string) (pulsar.Producer, error) {
	c.producersMutex.Lock()
	defer c.producersMutex.Unlock()

	producer, ok := c.producers[topic]
	if ok {
		return producer, nil
	}

	producer, err := c.client.CreateProducer(pulsar.ProducerOptions{
		Topic: topic,
	})
	if err != nil {
		return nil, fmt.Errorf("create producer for topic %s: %w", topic, err)
	}

	c.producers[topic] = producer
	return producer, nil
}
