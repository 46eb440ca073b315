package cmd

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/klwxsrx/kahuna-console/pkg/log"
)

// HandleAppPanic logs the value of recover(), which must be taken by the deferred function itself.
func HandleAppPanic(ctx context.Context, logger log.Logger, msg any) (panicCaught bool) {
	if msg == nil {
		return false
	}

	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	return true
}
