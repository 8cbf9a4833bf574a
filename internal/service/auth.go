package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/scheduleapp/internal/logger"
	"github.com/dtroode/scheduleapp/internal/model"
)

var errMissingCredentials = model.NewValidationError("Missing info", "Enter email and password.")

// Auth validates credentials before handing them to the auth gateway.
type Auth struct {
	gateway model.AuthGateway
	logger  *logger.Logger
}

func NewAuth(gateway model.AuthGateway, logger *logger.Logger) *Auth {
	return &Auth{
		gateway: gateway,
		logger:  logger,
	}
}

func (s *Auth) SignIn(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return errMissingCredentials
	}

	if err := s.gateway.SignInWithPassword(ctx, email, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	s.logger.Info("Auth service: signed in", "email", email)

	return nil
}

func (s *Auth) SignUp(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return errMissingCredentials
	}

	if err := s.gateway.SignUp(ctx, email, password); err != nil {
		return fmt.Errorf("sign up failed: %w", err)
	}

	s.logger.Info("Auth service: account created", "email", email)

	return nil
}
