package domain

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/backend"
	backendmocks "github.com/truvote/portal/internal/backend/mocks"
	"github.com/truvote/portal/internal/logger/mocks"
	"github.com/truvote/portal/internal/session"
)

func Test_authService_SignInVoter(t *testing.T) {
	tests := []struct {
		name  string
		email string
		mock  func(*backendmocks.Client)
		want  session.Session
		err   string
	}{
		{
			name:  "known voter",
			email: " Ada@Example.com ",
			mock: func(c *backendmocks.Client) {
				c.On("VoterLookup", mock.Anything, "ada@example.com").Once().Return("v-1", nil)
			},
			want: session.Voter("v-1"),
		},
		{
			name:  "empty email",
			email: "  ",
			want:  session.Unauthenticated(),
			err:   "Please enter your email address.",
		},
		{
			name:  "display name is not an email",
			email: "Ada <ada@example.com>",
			want:  session.Unauthenticated(),
			err:   "Please enter a valid email address.",
		},
		{
			name:  "unknown voter",
			email: "nobody@example.com",
			mock: func(c *backendmocks.Client) {
				c.On("VoterLookup", mock.Anything, "nobody@example.com").Once().
					Return("", &backend.APIError{StatusCode: 404, Message: "Voter not found"})
			},
			want: session.Unauthenticated(),
			err:  "voter lookup failed: backend answered 404: Voter not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewClient(t)
			if tt.mock != nil {
				tt.mock(client)
			}
			service := NewAuthService(mocks.NewNullLogger(), client)
			got, err := service.SignInVoter(context.Background(), tt.email)
			if tt.err != "" {
				require.EqualError(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_authService_SignInAdmin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		mock     func(*backendmocks.Client)
		want     session.Session
		err      string
	}{
		{
			name:     "valid credentials",
			username: "ada",
			password: "secret",
			mock: func(c *backendmocks.Client) {
				c.On("AdminLogin", mock.Anything, backend.Credentials{Username: "ada", Password: "secret"}).
					Once().Return("a-1", nil)
			},
			want: session.Admin(),
		},
		{
			name:     "missing password",
			username: "ada",
			want:     session.Unauthenticated(),
			err:      "Username and password are required.",
		},
		{
			name:     "wrong password",
			username: "ada",
			password: "nope",
			mock: func(c *backendmocks.Client) {
				c.On("AdminLogin", mock.Anything, mock.Anything).
					Once().Return("", &backend.APIError{StatusCode: 401, Message: "Invalid password"})
			},
			want: session.Unauthenticated(),
			err:  "admin login failed: backend answered 401: Invalid password",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := backendmocks.NewClient(t)
			if tt.mock != nil {
				tt.mock(client)
			}
			service := NewAuthService(mocks.NewNullLogger(), client)
			got, err := service.SignInAdmin(context.Background(), tt.username, tt.password)
			if tt.err != "" {
				require.EqualError(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func Test_authService_SignUpAdmin(t *testing.T) {
	client := backendmocks.NewClient(t)
	client.On("AdminCreate", mock.Anything, backend.Credentials{Username: "ada", Password: "secret"}).
		Once().Return("a-1", nil)
	service := NewAuthService(mocks.NewNullLogger(), client)

	got, err := service.SignUpAdmin(context.Background(), "<b>ada</b>", "secret")
	require.NoError(t, err)
	require.Equal(t, session.Admin(), got)

	got, err = service.SignUpAdmin(context.Background(), "<script></script>", "secret")
	require.ErrorAs(t, err, new(*ValidationError))
	require.Equal(t, session.Unauthenticated(), got)

	client.On("AdminCreate", mock.Anything, backend.Credentials{Username: "bob", Password: "x"}).
		Once().Return("", errors.New("timeout"))
	_, err = service.SignUpAdmin(context.Background(), "bob", "x")
	require.EqualError(t, err, "admin creation failed: timeout")
	require.False(t, errors.As(err, new(*ValidationError)))
}
