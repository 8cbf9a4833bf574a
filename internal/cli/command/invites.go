package command

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/navigation"
)

func invitesCommand() *cli.Command {
	return &cli.Command{
		Name:  "invites",
		Usage: "Manage invites of the active organization",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List invites",
				Action: invitesList,
			},
			{
				Name:  "create",
				Usage: "Invite someone by email",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Invitee email"},
					&cli.StringFlag{
						Name:    "role",
						Aliases: []string{"r"},
						Usage:   "Role: employee or manager",
						Value:   string(model.OrgRoleEmployee),
					},
				},
				Action: invitesCreate,
			},
		},
		Action: invitesList,
	}
}

func invitesList(c *cli.Context) error {
	a, err := openOrgScreen(c, navigation.Invites)
	if err != nil {
		return err
	}

	invites, err := a.Invites.List(c.Context)
	if err != nil {
		return err
	}
	return render(c, inviteRows(invites))
}

func invitesCreate(c *cli.Context) error {
	a, err := openOrgScreen(c, navigation.Invites)
	if err != nil {
		return err
	}

	role := model.OrgRole(strings.ToLower(strings.TrimSpace(c.String("role"))))
	token, err := a.Invites.Create(c.Context, c.String("email"), role)
	if err != nil {
		return err
	}
	return render(c, message{Title: "Invite created", Detail: token})
}

func redeemCommand() *cli.Command {
	return &cli.Command{
		Name:      "redeem",
		Usage:     "Join an organization with an invite token",
		ArgsUsage: "<token>",
		Action: func(c *cli.Context) error {
			a, err := openOrgScreen(c, navigation.Redeem)
			if err != nil {
				return err
			}

			orgID, err := a.Invites.Redeem(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			return render(c, message{Title: "Joined", Detail: orgID.String()})
		},
	}
}
