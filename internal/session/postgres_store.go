package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/volatiletech/sqlboiler/v4/boil"
	"github.com/volatiletech/sqlboiler/v4/drivers"
	"github.com/volatiletech/sqlboiler/v4/queries"
	"github.com/volatiletech/sqlboiler/v4/queries/qm"

	"github.com/truvote/portal/internal/database"
	"github.com/truvote/portal/internal/observability"
)

// purgeLockKey guards Purge so concurrent instances do not race on the
// same expired rows.
const purgeLockKey int64 = 0x7472_7576_6f74_65

var dialect = drivers.Dialect{
	LQ:                   '"',
	RQ:                   '"',
	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

type sessionRow struct {
	Record []byte `boil:"record"`
}

type lockRow struct {
	Locked bool `boil:"locked"`
}

func getExecutor(ctx context.Context, db *sql.DB) boil.ContextExecutor {
	tx, ok := ctx.Value(database.ContextTransaction).(*sql.Tx)
	if ok {
		return tx
	}
	return db
}

func newSessionsQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, append([]qm.QueryMod{qm.From(`"sessions"`)}, mods...)...)
	return q
}

type postgresStore struct {
	db  database.Database
	ttl time.Duration
	now func() time.Time
}

func NewPostgresStore(db database.Database, ttl time.Duration) *postgresStore {
	return &postgresStore{db: db, ttl: ttl, now: time.Now}
}

func (s *postgresStore) Load(ctx context.Context, token string) (Session, error) {
	id, err := uuid.FromString(token)
	if err != nil {
		return Unauthenticated(), nil
	}
	span := observability.StartSpan(ctx, "session.load", map[string]any{"db.system": "postgresql"})
	defer observability.FinishSpan(span)

	var row sessionRow
	err = newSessionsQuery(
		qm.Select(`"record"`),
		qm.Where(`"id" = ?`, id.String()),
		qm.And(`"expires_at" > ?`, s.now()),
	).Bind(ctx, getExecutor(ctx, s.db.DB()), &row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Unauthenticated(), nil
		}
		return Unauthenticated(), errors.Wrap(err, "unable to load session from database")
	}
	sess, err := Decode(row.Record)
	if err != nil {
		return Unauthenticated(), nil
	}
	return sess, nil
}

func (s *postgresStore) Save(ctx context.Context, sess Session) (string, error) {
	data, err := Encode(sess)
	if err != nil {
		return "", err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "unable to generate session token")
	}
	span := observability.StartSpan(ctx, "session.save", map[string]any{"db.system": "postgresql"})
	defer observability.FinishSpan(span)

	now := s.now()
	_, err = getExecutor(ctx, s.db.DB()).ExecContext(
		ctx,
		`INSERT INTO "sessions" ("id", "record", "expires_at", "created_at") VALUES ($1, $2, $3, $4)`,
		id.String(), data, now.Add(s.ttl), now,
	)
	if err != nil {
		return "", errors.Wrap(err, "unable to save session to database")
	}
	return id.String(), nil
}

func (s *postgresStore) Delete(ctx context.Context, token string) error {
	id, err := uuid.FromString(token)
	if err != nil {
		return nil
	}
	span := observability.StartSpan(ctx, "session.delete", map[string]any{"db.system": "postgresql"})
	defer observability.FinishSpan(span)

	q := newSessionsQuery(qm.Where(`"id" = ?`, id.String()))
	queries.SetDelete(q)
	if _, err = q.ExecContext(ctx, getExecutor(ctx, s.db.DB())); err != nil {
		return errors.Wrap(err, "unable to delete session from database")
	}
	return nil
}

// Purge removes expired records and returns how many were deleted. It runs
// in the caller's transaction when the context carries one. When another
// purge holds the lock nothing is deleted.
func (s *postgresStore) Purge(ctx context.Context) (count int64, err error) {
	span := observability.StartSpan(ctx, "session.purge", map[string]any{"db.system": "postgresql"})
	defer observability.FinishSpan(span)

	if _, ok := ctx.Value(database.ContextTransaction).(*sql.Tx); !ok {
		var tx *sql.Tx
		tx, ctx, err = s.db.StartTransaction(ctx)
		if err != nil {
			return 0, errors.Wrap(err, "unable to purge expired sessions")
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if err = tx.Commit(); err != nil {
				count = 0
				err = errors.Wrap(err, "unable to commit purged sessions")
			}
		}()
	}
	exec := getExecutor(ctx, s.db.DB())

	var lock lockRow
	err = queries.Raw(`SELECT pg_try_advisory_xact_lock($1) AS "locked"`, purgeLockKey).Bind(ctx, exec, &lock)
	if err != nil {
		return 0, errors.Wrap(err, "unable to lock expired sessions")
	}
	if !lock.Locked {
		return 0, nil
	}

	q := newSessionsQuery(qm.Where(`"expires_at" <= ?`, s.now()))
	queries.SetDelete(q)
	res, err := q.ExecContext(ctx, exec)
	if err != nil {
		return 0, errors.Wrap(err, "unable to purge expired sessions")
	}
	count, err = res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "unable to count purged sessions")
	}
	return count, nil
}
