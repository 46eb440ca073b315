package main

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/urfave/cli/v2"
)

var routesCommand = &cli.Command{
	Name:   "routes",
	Usage:  "List console pages and their access requirements",
	Action: routes,
}

func routes(c *cli.Context) error {
	container, err := getContainer(c)
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("PATH", "NAME", "LOGIN", "ROLES", "REDIRECT")
	for _, route := range container.RouteTable.MustLoad().Routes() {
		roles := "-"
		if len(route.Roles) > 0 {
			roles = strings.Join(route.Roles, ", ")
		}
		redirect := "-"
		if route.IsRedirect() {
			redirect = route.RedirectTo
		}
		table.AddRow(route.Path, route.Name, route.RequiresAuth, roles, redirect)
	}
	fmt.Println(table)
	return nil
}
