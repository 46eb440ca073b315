package main

import (
	"context"
	"fmt"

	"github.com/klwxsrx/kahuna-console/internal/account"
	"github.com/klwxsrx/kahuna-console/internal/pkg/cmd"
	pkgcmd "github.com/klwxsrx/kahuna-console/pkg/cmd"
	"github.com/klwxsrx/kahuna-console/pkg/env"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	if err := env.LoadDotEnv(); err != nil {
		panic(fmt.Errorf("load dotenv: %w", err))
	}

	config, err := account.ParseConfig()
	if err != nil {
		panic(err)
	}

	container := account.NewDependencyContainer(config, infra)
	container.MustSeedAdmin(ctx)

	httpServer := infra.NewHTTPServer(container.HTTPServerOptions()...)
	container.MustRegisterHTTPHandlers(httpServer)

	infra.Logger.MustLoad().Info(ctx, "auth dev server started")
	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
