package main

import (
	"errors"
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/urfave/cli/v2"
)

var openCommand = &cli.Command{
	Name:      "open",
	Usage:     "Navigate to console pages",
	ArgsUsage: "PATH [PATH ...]",
	Description: "Pages are opened one after another the way the console would, " +
		"the page actually shown is printed for each of them.",
	Action: open,
}

func open(c *cli.Context) error {
	if c.Args().Len() == 0 {
		return errors.New("open requires at least one PATH argument")
	}

	container, err := getContainer(c)
	if err != nil {
		return err
	}

	container.Store.MustLoad().Restore(c.Context)
	rtr := container.Router.MustLoad()

	table := uitable.New()
	table.AddRow("REQUESTED", "SHOWN", "NAME")
	for _, path := range c.Args().Slice() {
		route, err := rtr.Navigate(c.Context, path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		table.AddRow(path, route.Path, route.Name)
	}
	fmt.Println(table)
	return nil
}
