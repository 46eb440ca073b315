package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gosuri/uitable"
	"github.com/urfave/cli/v2"
)

var whoamiCommand = &cli.Command{
	Name:   "whoami",
	Usage:  "Show the current session",
	Action: whoami,
}

func whoami(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return errors.New("whoami requires no arguments")
	}

	container, err := getContainer(c)
	if err != nil {
		return err
	}

	store := container.Store.MustLoad()
	store.Restore(c.Context)
	if !store.CheckAuth(c.Context) {
		return errors.New("not logged in, run kahuna-console login")
	}

	snapshot := store.Snapshot()
	checkedAt := "-"
	if snapshot.LastCheckedAt != nil {
		checkedAt = snapshot.LastCheckedAt.Format(time.RFC3339)
	}

	table := uitable.New()
	table.AddRow("ID", "USERNAME", "EMAIL", "ROLES", "CHECKED AT")
	table.AddRow(
		snapshot.Session.UserID,
		snapshot.Session.Username,
		snapshot.Session.Email,
		strings.Join(snapshot.Session.Roles, ", "),
		checkedAt,
	)
	fmt.Println(table)
	return nil
}
