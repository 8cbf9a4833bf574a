package command

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/navigation"
)

func orgsCommand() *cli.Command {
	return &cli.Command{
		Name:    "orgs",
		Aliases: []string{"organizations"},
		Usage:   "List, create and switch organizations",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List organizations you belong to",
				Action: orgsList,
			},
			{
				Name:      "create",
				Usage:     "Create an organization and make it active",
				ArgsUsage: "<name>",
				Action:    orgsCreate,
			},
			{
				Name:      "use",
				Usage:     "Make an organization active",
				ArgsUsage: "<id|name>",
				Action:    orgsUse,
			},
		},
		Action: orgsList,
	}
}

func orgsList(c *cli.Context) error {
	a, err := openOrgScreen(c, navigation.Organizations)
	if err != nil {
		return err
	}
	active, _ := a.Orgs.ActiveOrg()
	return render(c, newOrgList(a.Orgs.Orgs(), active))
}

func orgsCreate(c *cli.Context) error {
	a, err := open(c, navigation.Organizations)
	if err != nil {
		return err
	}

	name := strings.Join(c.Args().Slice(), " ")
	id, err := a.Orgs.CreateOrg(c.Context, name)
	if err != nil {
		return err
	}
	return render(c, message{Title: "Created", Detail: fmt.Sprintf("%s (%s)", strings.TrimSpace(name), id)})
}

func orgsUse(c *cli.Context) error {
	a, err := openOrgScreen(c, navigation.Organizations)
	if err != nil {
		return err
	}

	ref := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if ref == "" {
		return model.NewValidationError("Missing organization", "Pass an organization id or name.")
	}

	org, ok := findOrg(a.Orgs.Orgs(), ref)
	if !ok {
		return fmt.Errorf("organization %q: %w", ref, model.ErrNotFound)
	}

	a.Orgs.SetActiveOrgID(c.Context, org.ID)
	return render(c, message{Title: "Active organization", Detail: org.Name})
}

func findOrg(orgs []model.Organization, ref string) (model.Organization, bool) {
	if id, err := uuid.Parse(ref); err == nil {
		for _, o := range orgs {
			if o.ID == id {
				return o, true
			}
		}
		return model.Organization{}, false
	}
	for _, o := range orgs {
		if strings.EqualFold(o.Name, ref) {
			return o, true
		}
	}
	return model.Organization{}, false
}

func membersCommand() *cli.Command {
	return &cli.Command{
		Name:  "members",
		Usage: "List members and pending invitees of the active organization",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "refresh", Usage: "Ignore cached results"},
		},
		Action: func(c *cli.Context) error {
			a, err := openOrgScreen(c, navigation.Members)
			if err != nil {
				return err
			}

			orgID := a.Orgs.ActiveOrgID()
			if c.Bool("refresh") {
				a.Members.Invalidate(orgID)
			}
			members, err := a.Members.Fetch(c.Context, orgID)
			if err != nil {
				return err
			}
			return render(c, newMemberRows(members))
		},
	}
}
