package database

import (
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/logger"
	"github.com/truvote/portal/migrations"
)

func Migrate(dbURL *url.URL, log logger.Logger) error {
	d, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return errors.Wrap(err, "could not read database migration files")
	}
	migration, err := migrate.NewWithSourceInstance("iofs", d, dbURL.String())
	if err != nil {
		return errors.Wrap(err, "failed to init migration")
	}
	defer migration.Close()

	log.Info("Running database migrations ...")
	err = migration.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "could not run migrations")
	}
	return nil
}
