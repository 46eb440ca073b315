package console

import (
	"context"

	"github.com/klwxsrx/kahuna-console/internal/session/domain"
	"github.com/klwxsrx/kahuna-console/pkg/event"
	"github.com/klwxsrx/kahuna-console/pkg/log"
)

func sessionEventHandlers(logger log.Logger) map[string][]event.Handler {
	return map[string][]event.Handler{
		domain.EventTypeLoggedIn: {
			event.NewTypedHandler(func(ctx context.Context, evt domain.EventLoggedIn) error {
				logger.With(log.Fields{
					"userID":   evt.UserID,
					"username": evt.Username,
					"roles":    []string(evt.Roles),
				}).Info(ctx, "logged in")
				return nil
			}),
		},
		domain.EventTypeLoggedOut: {
			event.NewTypedHandler(func(ctx context.Context, evt domain.EventLoggedOut) error {
				logger.WithField("userID", evt.UserID).Info(ctx, "logged out")
				return nil
			}),
		},
		domain.EventTypeInvalidated: {
			event.NewTypedHandler(func(ctx context.Context, evt domain.EventInvalidated) error {
				logger.WithField("userID", evt.UserID).Warn(ctx, "session is no longer valid, log in again")
				return nil
			}),
		},
	}
}
