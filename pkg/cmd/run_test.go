package cmd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/kahuna-console/pkg/cmd"
	"github.com/klwxsrx/kahuna-console/pkg/log"
)

func TestRun_StopsOtherJobs_WhenOneCompletes(t *testing.T) {
	stopped := make(chan struct{})
	err := cmd.Run(context.Background(), log.NewStub(),
		func(context.Context) error { return nil },
		func(ctx context.Context) error {
			<-ctx.Done()
			close(stopped)
			return ctx.Err()
		},
	)

	assert.NoError(t, err)
	<-stopped
}

func TestRun_ReturnsJobError(t *testing.T) {
	expected := errors.New("listener failed")
	err := cmd.Run(context.Background(), log.NewStub(),
		func(context.Context) error { return expected },
		func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		},
	)

	assert.ErrorIs(t, err, expected)
}
