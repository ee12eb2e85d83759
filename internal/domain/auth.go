package domain

import (
	"context"
	"net/mail"
	"strings"

	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/backend"
	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/internal/session"
)

// AuthService checks credentials against the backend and returns the session
// to install. It never touches the session holder itself.
//
//go:generate mockery --with-expecter --name=AuthService
type AuthService interface {
	SignInVoter(ctx context.Context, email string) (session.Session, error)
	SignInAdmin(ctx context.Context, username, password string) (session.Session, error)
	SignUpAdmin(ctx context.Context, username, password string) (session.Session, error)
}

type authService struct {
	log     logger.Logger
	backend backend.Client
}

func NewAuthService(log logger.Logger, client backend.Client) *authService {
	return &authService{log: log, backend: client}
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", invalid("Please enter your email address.")
	}
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return "", invalid("Please enter a valid email address.")
	}
	return strings.ToLower(address.Address), nil
}

func credentials(username, password string) (backend.Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return backend.Credentials{}, invalid("Username and password are required.")
	}
	return backend.Credentials{Username: username, Password: password}, nil
}

func (a *authService) SignInVoter(ctx context.Context, email string) (session.Session, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return session.Unauthenticated(), err
	}
	voterID, err := a.backend.VoterLookup(ctx, email)
	if err != nil {
		return session.Unauthenticated(), errors.Wrap(err, "voter lookup failed")
	}
	a.log.WithField("voter_id", voterID).Debug("voter signed in")
	return session.Voter(voterID), nil
}

func (a *authService) SignInAdmin(ctx context.Context, username, password string) (session.Session, error) {
	creds, err := credentials(username, password)
	if err != nil {
		return session.Unauthenticated(), err
	}
	if _, err := a.backend.AdminLogin(ctx, creds); err != nil {
		return session.Unauthenticated(), errors.Wrap(err, "admin login failed")
	}
	a.log.WithField("username", creds.Username).Debug("admin signed in")
	return session.Admin(), nil
}

func (a *authService) SignUpAdmin(ctx context.Context, username, password string) (session.Session, error) {
	creds, err := credentials(username, password)
	if err != nil {
		return session.Unauthenticated(), err
	}
	creds.Username = cleanText(creds.Username)
	if creds.Username == "" {
		return session.Unauthenticated(), invalid("Username and password are required.")
	}
	if _, err := a.backend.AdminCreate(ctx, creds); err != nil {
		return session.Unauthenticated(), errors.Wrap(err, "admin creation failed")
	}
	a.log.WithField("username", creds.Username).Info("admin account created")
	return session.Admin(), nil
}
