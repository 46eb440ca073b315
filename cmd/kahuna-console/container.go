package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/klwxsrx/kahuna-console/internal/console"
)

func getContainer(c *cli.Context) (*console.DependencyContainer, error) {
	config, err := console.ParseConfig()
	if err != nil {
		return nil, err
	}

	if apiURL := c.String(flagAPIURL); apiURL != "" {
		config.APIURL = apiURL
	}
	if tokenFile := c.String(flagTokenFile); tokenFile != "" {
		config.TokenFile = tokenFile
	}
	if logLevel := c.String(flagLogLevel); logLevel != "" {
		config.LogLevel = console.ParseLogLevel(logLevel)
	}

	container := console.NewDependencyContainer(config)
	if _, err = container.Store.Load(); err != nil {
		return nil, fmt.Errorf("init session store: %w", err)
	}

	return container, nil
}
