package cmd

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/klwxsrx/kahuna-console/pkg/log"
)

type Job func(context.Context) error

func MustRun(ctx context.Context, logger log.Logger, jobs ...Job) {
	if err := Run(ctx, logger, jobs...); err != nil {
		panic(fmt.Errorf("some of the jobs completed with error: %w", err))
	}
}

// Run starts all jobs and stops the rest as soon as any of them returns.
func Run(ctx context.Context, logger log.Logger, jobs ...Job) error {
	errCompleted := errors.New("job completed")

	group, groupCtx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		group.Go(func() error {
			err := job(groupCtx)
			if err == nil || errors.Is(err, context.Canceled) {
				return errCompleted
			}

			logger.WithError(err).Error(groupCtx, "running job completed with error")
			return err
		})
	}

	err := group.Wait()
	if !errors.Is(err, errCompleted) {
		return err
	}

	return nil
}
