// Package app wires the application together.
package app

import (
	"context"
	"fmt"

	"github.com/dtroode/scheduleapp/internal/config"
	"github.com/dtroode/scheduleapp/internal/gateway/auth"
	"github.com/dtroode/scheduleapp/internal/gateway/rest"
	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
	"github.com/dtroode/scheduleapp/internal/navigation"
	"github.com/dtroode/scheduleapp/internal/repository/postgres"
	"github.com/dtroode/scheduleapp/internal/service"
	"github.com/dtroode/scheduleapp/internal/session"
	"github.com/dtroode/scheduleapp/internal/storage/badger"
	"github.com/dtroode/scheduleapp/internal/token"
	"github.com/dtroode/scheduleapp/internal/transport"
)

// DataBackend is implemented by both the REST gateway and the direct database repository.
type DataBackend interface {
	model.OrgStore
	model.InviteStore
	model.WorkSiteStore
	model.ProfileStore
}

// App holds every long-lived component.
type App struct {
	Config *config.Config
	Logger *logger.Logger

	Gateway *auth.Client
	Session *session.Store
	Router  *navigation.Router
	Gate    *navigation.Gate

	Auth      *service.Auth
	Orgs      *service.Orgs
	Members   *service.Members
	Invites   *service.Invites
	WorkSites *service.WorkSites
	Profiles  *service.Profiles

	closers []func() error
}

// New builds the application. The session is not fetched until Init.
func New(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	if err := a.build(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) build(ctx context.Context) error {
	cfg := a.Config

	httpClient, err := transport.NewHTTPClient(transport.Options{
		AnonKey:    cfg.Backend.AnonKey,
		Timeout:    cfg.Backend.Timeout,
		CACertFile: cfg.Backend.CACertFile,
	}, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to create http client: %w", err)
	}

	storeOpts := badger.Options{InMemory: cfg.Storage.InMemory}
	if !storeOpts.InMemory {
		dir, err := cfg.Storage.Dir()
		if err != nil {
			return err
		}
		storeOpts.Dir = dir
	}
	store, err := badger.NewStore(storeOpts, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to open local storage: %w", err)
	}
	a.closers = append(a.closers, store.Close)

	a.Gateway = auth.NewClient(httpClient, auth.Options{
		BaseURL:       cfg.Backend.URL,
		RefreshMargin: cfg.Auth.RefreshMargin,
	}, token.NewDecoder(cfg.Backend.JWTSecret), store, a.Logger)
	a.closers = append(a.closers, func() error { a.Gateway.Close(); return nil })

	if cfg.Auth.AutoRefresh {
		a.Gateway.StartAutoRefresh(ctx, cfg.Auth.RefreshInterval)
	}

	a.Session = session.New(a.Gateway, a.Logger)
	a.closers = append(a.closers, func() error { a.Session.Close(); return nil })

	var backend DataBackend
	if cfg.DirectDatabase() {
		conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, conn.Close)
		backend = postgres.NewRepository(conn.DB, a.Session, a.Logger)
		a.Logger.Debug("App: using direct database access")
	} else {
		backend = rest.NewClient(httpClient, cfg.Backend.URL, a.Gateway, a.Logger)
	}

	a.Router = navigation.NewRouter(navigation.Landing)
	a.Gate = navigation.NewGate(a.Session, a.Router, a.Logger)
	a.Gate.Start()
	a.closers = append(a.closers, func() error { a.Gate.Stop(); return nil })

	a.Auth = service.NewAuth(a.Gateway, a.Logger)
	a.Orgs = service.NewOrgs(backend, store, a.Logger)
	a.Members = service.NewMembers(backend, cfg.Members.StaleTime, a.Logger)
	a.Invites = service.NewInvites(backend, a.Orgs, a.Members, a.Logger)
	a.WorkSites = service.NewWorkSites(backend, a.Orgs, a.Session, a.Logger)
	a.Profiles = service.NewProfiles(backend, a.Session, a.Logger)

	return nil
}

// Init resolves the current session. It is safe to call more than once.
func (a *App) Init(ctx context.Context) {
	a.Session.Initialize(ctx)
}

// Close tears components down in reverse order of construction.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
