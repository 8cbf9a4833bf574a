// Package command defines the scheduleapp command line interface.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/dtroode/scheduleapp/internal/app"
	"github.com/dtroode/scheduleapp/internal/cli/output"
	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/navigation"
)

const (
	appKey     = "app"
	factoryKey = "factory"
)

var errUnauthenticated = fmt.Errorf("%w: run 'login' first", model.ErrNotAuthenticated)

// Factory builds the application on first use.
type Factory func(ctx context.Context) (*app.App, error)

// New creates the root CLI application.
func New(factory Factory, version string) *cli.App {
	return &cli.App{
		Name:                 "scheduleapp",
		Usage:                "Manage organizations, members, invites and work sites",
		Version:              version,
		Flags:                globalFlags(),
		Commands:             Commands(true),
		EnableBashCompletion: true,
		Metadata:             map[string]any{factoryKey: factory},
		Before: func(c *cli.Context) error {
			_, err := output.ParseFormat(c.String("output"))
			return err
		},
		After: func(c *cli.Context) error {
			a, ok := c.App.Metadata[appKey].(*app.App)
			if !ok {
				return nil
			}
			delete(c.App.Metadata, appKey)
			return a.Close()
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   string(output.FormatTable),
			EnvVars: []string{"SCHEDULEAPP_OUTPUT"},
		},
	}
}

// Commands returns the command set. The shell command is left out of nested shells.
func Commands(withShell bool) []*cli.Command {
	cmds := []*cli.Command{
		loginCommand(),
		registerCommand(),
		logoutCommand(),
		whoamiCommand(),
		orgsCommand(),
		membersCommand(),
		invitesCommand(),
		redeemCommand(),
		sitesCommand(),
		profileCommand(),
	}
	if withShell {
		cmds = append(cmds, shellCommand())
	}
	return cmds
}

// PrintError writes err to w in a user facing form.
func PrintError(w io.Writer, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(w, "%s: %s\n", verr.Title, verr.Message)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

// appFrom returns the shared application with its session resolved.
func appFrom(c *cli.Context) (*app.App, error) {
	a, err := buildApp(c)
	if err != nil {
		return nil, err
	}
	a.Init(c.Context)
	return a, nil
}

// buildApp returns the shared application, building it on first use.
func buildApp(c *cli.Context) (*app.App, error) {
	md := c.App.Metadata
	if a, ok := md[appKey].(*app.App); ok {
		return a, nil
	}

	factory, ok := md[factoryKey].(Factory)
	if !ok || factory == nil {
		return nil, errors.New("application factory is not configured")
	}
	a, err := factory(c.Context)
	if err != nil {
		return nil, err
	}
	md[appKey] = a
	return a, nil
}

// open navigates to screen and fails if the gate redirects away from it.
func open(c *cli.Context, screen model.ScreenPath) (*app.App, error) {
	a, err := appFrom(c)
	if err != nil {
		return nil, err
	}

	if navigation.Canonical(a.Router.Location()) != navigation.Canonical(screen) {
		a.Router.Push(screen)
	}

	loc := a.Router.Location()
	if navigation.Canonical(loc) == navigation.Canonical(screen) {
		return a, nil
	}
	if navigation.InAuthGroup(loc) {
		return nil, errUnauthenticated
	}
	return nil, errRedirected{to: loc}
}

type errRedirected struct {
	to model.ScreenPath
}

func (e errRedirected) Error() string {
	return fmt.Sprintf("redirected to %s", e.to)
}

// openOrgScreen opens screen and restores the organization list.
func openOrgScreen(c *cli.Context, screen model.ScreenPath) (*app.App, error) {
	a, err := open(c, screen)
	if err != nil {
		return nil, err
	}
	if err := a.Orgs.FetchOrgs(c.Context); err != nil {
		return nil, fmt.Errorf("failed to load organizations: %w", err)
	}
	return a, nil
}

func render(c *cli.Context, data any) error {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(c.App.Writer, data)
}
