package database_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/truvote/portal/internal/database"
	loggermocks "github.com/truvote/portal/internal/logger/mocks"
)

func TestConnect_InvalidURL(t *testing.T) {
	dbURL, err := url.Parse("postgres://user@localhost:99999/db")
	require.NoError(t, err)

	db := database.NewPostgres(dbURL, loggermocks.NewNullLogger())
	require.NotPanics(t, func() {
		err = db.Connect()
	})
	require.ErrorContains(t, err, "unable to parse the database url")
	require.Nil(t, db.DB())
}

func TestStartTransaction_NotConnected(t *testing.T) {
	dbURL, err := url.Parse("postgres://user@localhost:5432/db")
	require.NoError(t, err)

	db := database.NewPostgres(dbURL, loggermocks.NewNullLogger())
	tx, ctx, err := db.StartTransaction(context.Background())
	require.Error(t, err)
	require.Nil(t, tx)
	require.Nil(t, ctx.Value(database.ContextTransaction))
}
