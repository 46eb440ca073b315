package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var logoutCommand = &cli.Command{
	Name:   "logout",
	Usage:  "Log out of Kahuna",
	Action: logout,
}

func logout(c *cli.Context) error {
	container, err := getContainer(c)
	if err != nil {
		return err
	}

	store := container.Store.MustLoad()
	store.Restore(c.Context)
	store.Logout(c.Context)

	fmt.Println("Logged out.")
	return nil
}
