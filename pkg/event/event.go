//go:generate mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Dispatcher=Dispatcher"
package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type (
	Event interface {
		ID() uuid.UUID
		Type() string
	}

	Dispatcher interface {
		Dispatch(ctx context.Context, events ...Event) error
	}

	Handler func(ctx context.Context, event Event) error

	dispatcher struct {
		handlers map[string][]Handler
	}
)

// NewDispatcher delivers events synchronously to the handlers registered for their type,
// events without handlers are dropped.
func NewDispatcher(handlers map[string][]Handler) Dispatcher {
	return &dispatcher{handlers: handlers}
}

func (d *dispatcher) Dispatch(ctx context.Context, events ...Event) error {
	var errs []error
	for _, evt := range events {
		for _, handler := range d.handlers[evt.Type()] {
			err := handler(ctx, evt)
			if err != nil {
				errs = append(errs, fmt.Errorf("handle event %s with id %v: %w", evt.Type(), evt.ID(), err))
			}
		}
	}

	return errors.Join(errs...)
}

func NewTypedHandler[T Event](
	handler func(ctx context.Context, event T) error,
	handlers ...func(ctx context.Context, event T) error,
) Handler {
	handlers = append([]func(ctx context.Context, event T) error{handler}, handlers...)
	return func(ctx context.Context, event Event) error {
		concreteEvent, ok := event.(T)
		if !ok {
			return fmt.Errorf("invalid event with id %v and type %v passed", event.ID(), event.Type())
		}
		for _, handler := range handlers {
			err := handler(ctx, concreteEvent)
			if err != nil {
				return err
			}
		}
		return nil
	}
}
