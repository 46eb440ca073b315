package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/klwxsrx/kahuna-console/internal/account/domain"
	"github.com/klwxsrx/kahuna-console/pkg/event"
	"github.com/klwxsrx/kahuna-console/pkg/log"
	"github.com/klwxsrx/kahuna-console/pkg/pulsar"
)

type record struct {
	Type    string      `json:"type"`
	Payload event.Event `json:"payload"`
}

// Handlers routes every audit event to handler.
func Handlers(handler event.Handler) map[string][]event.Handler {
	return map[string][]event.Handler{
		domain.EventLoginSucceeded{}.Type(): {handler},
		domain.EventLoginFailed{}.Type():    {handler},
		domain.EventLogout{}.Type():         {handler},
		domain.EventSignUp{}.Type():         {handler},
	}
}

// NewPulsarHandler publishes audit events to topic, publishing failures are logged and do not fail the request.
func NewPulsarHandler(producer pulsar.Producer, topic string, logger log.Logger) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		payload, err := json.Marshal(record{Type: evt.Type(), Payload: evt})
		if err != nil {
			return fmt.Errorf("encode audit event: %w", err)
		}

		err = producer.Send(ctx, pulsar.Message{
			ID:      evt.ID(),
			Topic:   topic,
			Key:     evt.Type(),
			Payload: payload,
		})
		if err != nil {
			logger.With(log.Fields{
				"eventID":   evt.ID(),
				"eventType": evt.Type(),
			}).WithError(err).Error(ctx, "failed to publish audit event")
		}
		return nil
	}
}

func NewLogHandler(logger log.Logger) event.Handler {
	return func(ctx context.Context, evt event.Event) error {
		logger.With(log.Fields{
			"eventID":   evt.ID(),
			"eventType": evt.Type(),
			"payload":   evt,
		}).Info(ctx, "audit event")
		return nil
	}
}
