//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/scheduleapp/internal/model"
	repo "github.com/dtroode/scheduleapp/internal/repository/postgres"
	"github.com/dtroode/scheduleapp/internal/testutil"
)

var dsn string

//go:embed testdata/migrations/*.sql
var migrations embed.FS

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "scheduleapp_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/scheduleapp_test?sslmode=disable", host, port.Port())

	conn, err := repo.NewConnection(ctx, dsn)
	if err != nil {
		panic(err)
	}
	if err := migrate(conn.DB); err != nil {
		panic(err)
	}
	_ = conn.Close()

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

// migrate applies a minimal stand-in for the backend schema. The procedures
// read the caller from request.jwt.claims the same way the real ones do.
func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(db, "testdata/migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

type identity struct {
	user model.Identity
}

func (i identity) CurrentUser() (model.Identity, bool) {
	return i.user, true
}

func TestRepository_Flow(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	owner := model.Identity{ID: uuid.New(), Email: "owner@example.com"}
	employee := model.Identity{ID: uuid.New(), Email: "employee@example.com"}

	ownerRepo := repo.NewRepository(conn.DB, identity{owner}, testutil.MakeNoopLogger())
	employeeRepo := repo.NewRepository(conn.DB, identity{employee}, testutil.MakeNoopLogger())

	require.NoError(t, ownerRepo.UpsertProfile(ctx, model.Profile{ID: owner.ID, Email: owner.Email, FirstName: "Olga"}))
	require.NoError(t, ownerRepo.UpsertProfile(ctx, model.Profile{ID: owner.ID, Email: owner.Email, FirstName: "Olga", City: "Oslo"}))

	p, err := ownerRepo.GetProfile(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "Oslo", p.City)

	_, err = ownerRepo.GetProfile(ctx, employee.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	orgID, err := ownerRepo.CreateOrganization(ctx, "Acme")
	require.NoError(t, err)

	orgs, err := ownerRepo.ListOrganizations(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, orgs)

	nick := "HQ"
	require.NoError(t, ownerRepo.CreateWorkSite(ctx, model.NewWorkSite{OrgID: orgID, Name: "Main", Nickname: &nick, CreatedBy: owner.ID}))
	sites, err := ownerRepo.ListWorkSites(ctx, orgID)
	require.NoError(t, err)
	require.Len(t, sites, 1)
	require.Equal(t, "HQ", *sites[0].Nickname)

	token, err := ownerRepo.CreateInvite(ctx, orgID, employee.Email, model.OrgRoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	invites, err := ownerRepo.ListInvites(ctx, orgID)
	require.NoError(t, err)
	require.Len(t, invites, 1)
	require.Equal(t, model.InviteStatusPending, invites[0].Status)

	members, err := ownerRepo.ListMembers(ctx, orgID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	joined, err := employeeRepo.RedeemInvite(ctx, token)
	require.NoError(t, err)
	require.Equal(t, orgID, joined)

	_, err = employeeRepo.RedeemInvite(ctx, token)
	require.Error(t, err)

	members, err = ownerRepo.ListMembers(ctx, orgID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, m := range members {
		require.Equal(t, model.OrgMemberActive, m.MemberType)
	}
}
