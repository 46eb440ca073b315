package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/klwxsrx/kahuna-console/internal/console"
	pkgcmd "github.com/klwxsrx/kahuna-console/pkg/cmd"
	"github.com/klwxsrx/kahuna-console/pkg/env"
)

func main() {
	if err := env.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := cli.NewApp()
	app.Name = "kahuna-console"
	app.Usage = "Kahuna industry console"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    flagAPIURL,
			Usage:   "Kahuna API base URL",
			EnvVars: []string{console.EnvAPIURL},
			Value:   console.DefaultAPIURL,
		},
		&cli.StringFlag{
			Name:    flagTokenFile,
			Usage:   "File keeping the session token between runs",
			EnvVars: []string{console.EnvTokenFile},
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level: disabled, debug, info, warn or error",
			EnvVars: []string{console.EnvLogLevel},
		},
	}
	app.Commands = []*cli.Command{
		loginCommand,
		logoutCommand,
		whoamiCommand,
		openCommand,
		routesCommand,
	}

	ctx, stop := pkgcmd.TermSignalContext(context.Background())
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		stop()
		os.Exit(1) //nolint:gocritic
	}
}
