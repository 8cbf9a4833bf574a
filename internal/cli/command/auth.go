package command

import (
	"github.com/urfave/cli/v2"

	"github.com/dtroode/scheduleapp/internal/app"
	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/navigation"
)

func credentialFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "email",
			Aliases: []string{"e"},
			Usage:   "Account email",
			EnvVars: []string{"SCHEDULEAPP_EMAIL"},
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "Account password",
			EnvVars: []string{"SCHEDULEAPP_PASSWORD"},
		},
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in with email and password",
		Flags: credentialFlags(),
		Action: func(c *cli.Context) error {
			a, err := openAuthScreen(c, navigation.Login)
			if err != nil || a == nil {
				return err
			}

			if err := a.Auth.SignIn(c.Context, c.String("email"), c.String("password")); err != nil {
				return err
			}

			user, _ := a.Session.CurrentUser()
			return render(c, message{Title: "Logged in", Detail: user.Email})
		},
	}
}

func registerCommand() *cli.Command {
	return &cli.Command{
		Name:  "register",
		Usage: "Create an account",
		Flags: credentialFlags(),
		Action: func(c *cli.Context) error {
			a, err := openAuthScreen(c, navigation.Register)
			if err != nil || a == nil {
				return err
			}

			if err := a.Auth.SignUp(c.Context, c.String("email"), c.String("password")); err != nil {
				return err
			}
			a.Router.Replace(navigation.Login)

			if user, ok := a.Session.CurrentUser(); ok {
				return render(c, message{Title: "Account created", Detail: "signed in as " + user.Email})
			}
			return render(c, message{
				Title:  "Account created",
				Detail: "If email confirmation is enabled, check your inbox before logging in.",
			})
		},
	}
}

// openAuthScreen opens an auth screen. It returns a nil App when the user is already signed in.
func openAuthScreen(c *cli.Context, screen model.ScreenPath) (*app.App, error) {
	a, err := appFrom(c)
	if err != nil {
		return nil, err
	}

	a.Router.Push(screen)
	if a.Router.Location() == screen {
		return a, nil
	}

	user, _ := a.Session.CurrentUser()
	return nil, render(c, message{Title: "Already signed in", Detail: user.Email})
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Sign out of the current session",
		Action: func(c *cli.Context) error {
			a, err := appFrom(c)
			if err != nil {
				return err
			}
			if _, ok := a.Session.CurrentUser(); !ok {
				return render(c, message{Title: "Not signed in"})
			}

			a.Session.SignOut(c.Context)
			return render(c, message{Title: "Signed out"})
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed in user",
		Action: func(c *cli.Context) error {
			a, err := appFrom(c)
			if err != nil {
				return err
			}

			view := whoami{
				Status: a.Gate.Status().String(),
				Screen: string(a.Router.Location()),
			}
			if user, ok := a.Session.CurrentUser(); ok {
				view.ID = &user.ID
				view.Email = user.Email
			}
			return render(c, view)
		},
	}
}
