package main

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/urfave/cli/v2"

	"github.com/klwxsrx/kahuna-console/internal/navigation/app/guard"
	"github.com/klwxsrx/kahuna-console/internal/session/domain"
)

var loginCommand = &cli.Command{
	Name:  "login",
	Usage: "Log in to Kahuna",
	Description: "Prompts for the username and password when they are not " +
		"passed as flags. The session token is kept for the following commands.",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    flagUsername,
			Aliases: []string{"u"},
			Usage:   "Username to log in with",
		},
		&cli.StringFlag{
			Name:    flagPassword,
			Aliases: []string{"p"},
			Usage:   "Password for non-interactive login",
		},
	},
	Action: login,
}

func login(c *cli.Context) error {
	credentials := domain.Credentials{
		Username: c.String(flagUsername),
		Password: c.String(flagPassword),
	}
	for credentials.Username == "" {
		if err := survey.AskOne(&survey.Input{Message: "Username"}, &credentials.Username); err != nil {
			return err
		}
	}
	for credentials.Password == "" {
		if err := survey.AskOne(&survey.Password{Message: "Password"}, &credentials.Password); err != nil {
			return err
		}
	}

	container, err := getContainer(c)
	if err != nil {
		return err
	}
	store := container.Store.MustLoad()
	rtr := container.Router.MustLoad()

	if _, err = rtr.Navigate(c.Context, guard.DefaultLoginPath); err != nil {
		return err
	}

	if err = store.Login(c.Context, credentials); err != nil {
		return fmt.Errorf("login failed: %s", store.LastError())
	}

	route, err := rtr.Navigate(c.Context, guard.DefaultHomePath)
	if err != nil {
		return err
	}

	session, _ := store.Session()
	fmt.Printf("Logged in as %s [%s], landed on %s\n", session.Username, strings.Join(session.Roles, ", "), route.Path)
	return nil
}
