package command

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtroode/scheduleapp/internal/navigation"
)

func sitesCommand() *cli.Command {
	return &cli.Command{
		Name:    "sites",
		Aliases: []string{"work-sites"},
		Usage:   "Manage work sites of the active organization",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List work sites",
				Action: sitesList,
			},
			{
				Name:      "create",
				Usage:     "Add a work site",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nickname", Aliases: []string{"n"}, Usage: "Short name"},
				},
				Action: sitesCreate,
			},
		},
		Action: sitesList,
	}
}

func sitesList(c *cli.Context) error {
	a, err := openOrgScreen(c, navigation.WorkSites)
	if err != nil {
		return err
	}

	sites, err := a.WorkSites.List(c.Context)
	if err != nil {
		return err
	}
	return render(c, siteRows(sites))
}

func sitesCreate(c *cli.Context) error {
	a, err := openOrgScreen(c, navigation.WorkSites)
	if err != nil {
		return err
	}

	name := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if err := a.WorkSites.Create(c.Context, name, c.String("nickname")); err != nil {
		return err
	}
	return render(c, message{Title: "Created", Detail: name})
}
