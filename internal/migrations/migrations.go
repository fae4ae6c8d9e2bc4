package migrations

import (
	"context"
	"embed"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

//go:embed *.sql
var sqlMigrations embed.FS

func New() (*migrate.Migrations, error) {
	migrations := migrate.NewMigrations()
	if err := migrations.Discover(sqlMigrations); err != nil {
		return nil, errors.Wrap(err, "discover migrations")
	}
	return migrations, nil
}

// Up applies every pending migration under the migration lock.
func Up(ctx context.Context, db *bun.DB) error {
	migrations, err := New()
	if err != nil {
		return err
	}

	migrator := migrate.NewMigrator(db, migrations)
	if err := migrator.Init(ctx); err != nil {
		return errors.Wrap(err, "init migration tables")
	}

	if err := migrator.Lock(ctx); err != nil {
		return errors.Wrap(err, "acquire migration lock")
	}
	defer func() {
		if err := migrator.Unlock(ctx); err != nil {
			log.Error().Err(err).Msg("failed to release migration lock")
		}
	}()

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return errors.Wrap(err, "migrate")
	}
	if group.IsZero() {
		log.Info().Str("evt.name", "migrations.up_to_date").Msg("database is up to date")
		return nil
	}

	log.Info().
		Str("evt.name", "migrations.applied").
		Str("group", group.String()).
		Msg("migrations applied")
	return nil
}
