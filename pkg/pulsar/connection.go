package pulsar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/cenkalti/backoff/v4"

	"github.com/klwxsrx/kahuna-console/pkg/log"
)

const defaultConnectionTimeout = 20 * time.Second

type Config struct {
	Address           string
	ConnectionTimeout time.Duration
}

type Connection interface {
	Producer() Producer
	Close()
}

type connection struct {
	client pulsar.Client

	producersMutex sync.Mutex
	producers      map[string]pulsar.Producer
}

func NewConnection(ctx context.Context, config Config, logger log.Logger) (Connection, error) {
	c, err := pulsar.NewClient(pulsar.ClientOptions{
		URL:    fmt.Sprintf("pulsar://%s", config.Address),
		Logger: newLoggerAdapter(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("create pulsar client: %w", err)
	}

	conn := &connection{
		client:    c,
		producers: make(map[string]pulsar.Producer),
	}

	connTimeout := defaultConnectionTimeout
	if config.ConnectionTimeout > 0 {
		connTimeout = config.ConnectionTimeout
	}
	err = conn.testCreateProducer(ctx, connTimeout)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("connect to broker: %w", err)
	}

	return conn, nil
}

func (c *connection) Producer() Producer {
	return c
}

func (c *connection) Close() {
	c.producersMutex.Lock()
	defer c.producersMutex.Unlock()

	for _, producer := range c.producers {
		producer.Close()
	}
	c.client.Close()
}

func (c *connection) testCreateProducer(ctx context.Context, connTimeout time.Duration) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = time.Second
	eb.RandomizationFactor = 0
	eb.Multiplier = 2
	eb.MaxInterval = connTimeout / 4
	eb.MaxElapsedTime = connTimeout

	return backoff.Retry(func() error {
		p, err := c.client.CreateProducer(pulsar.ProducerOptions{
			Topic: "non-persistent://public/default/test-topic",
		})
		if err == nil {
			p.Close()
		}
		return err
	}, backoff.WithContext(eb, ctx))
}
