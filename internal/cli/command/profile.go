package command

import (
	"github.com/urfave/cli/v2"

	"github.com/dtroode/scheduleapp/internal/navigation"
	"github.com/dtroode/scheduleapp/internal/service"
)

func profileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show or edit your profile",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show your profile",
				Action: profileShow,
			},
			{
				Name:  "set",
				Usage: "Update profile fields; unset flags keep their value",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "first-name"},
					&cli.StringFlag{Name: "last-name"},
					&cli.StringFlag{Name: "street"},
					&cli.StringFlag{Name: "city"},
					&cli.StringFlag{Name: "state"},
					&cli.StringFlag{Name: "country"},
					&cli.StringFlag{Name: "zip"},
				},
				Action: profileSet,
			},
		},
		Action: profileShow,
	}
}

func profileShow(c *cli.Context) error {
	a, err := open(c, navigation.Profile)
	if err != nil {
		return err
	}

	p, err := a.Profiles.Load(c.Context)
	if err != nil {
		return err
	}
	return render(c, profileView(p))
}

func profileSet(c *cli.Context) error {
	a, err := open(c, navigation.Profile)
	if err != nil {
		return err
	}

	p, err := a.Profiles.Load(c.Context)
	if err != nil {
		return err
	}

	in := service.InputFromProfile(p)
	for flag, field := range map[string]*string{
		"first-name": &in.FirstName,
		"last-name":  &in.LastName,
		"street":     &in.StreetAddress,
		"city":       &in.City,
		"state":      &in.State,
		"country":    &in.Country,
		"zip":        &in.Zipcode,
	} {
		if c.IsSet(flag) {
			*field = c.String(flag)
		}
	}

	if err := a.Profiles.Save(c.Context, in); err != nil {
		return err
	}
	return render(c, message{Title: "Saved"})
}
