package database

import (
	"context"
	"database/sql"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"

	"github.com/truvote/portal/internal/logger"
)

type Database interface {
	Connect() error
	DB() *sql.DB
	StartTransaction(context.Context) (*sql.Tx, context.Context, error)
}

type contextKey int

const (
	// ContextTransaction holds the *sql.Tx opened by StartTransaction.
	ContextTransaction contextKey = iota
)

const connectTimeout = 5 * time.Second

type postgres struct {
	url *url.URL
	log logger.Logger
	db  *sql.DB
}

func NewPostgres(url *url.URL, log logger.Logger) *postgres {
	return &postgres{
		url: url,
		log: log,
	}
}

// Connect opens the pool and checks the server answers. Queries are traced
// through the logger.
func (p *postgres) Connect() error {
	connConfig, err := pgx.ParseConfig(p.url.String())
	if err != nil {
		return errors.Wrap(err, "unable to parse the database url")
	}
	connConfig.Tracer = p.log
	database, err := sql.Open("pgx", stdlib.RegisterConnConfig(connConfig))
	if err != nil {
		return errors.Wrap(err, "unable to open a connection to the database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err = database.PingContext(ctx); err != nil {
		_ = database.Close()
		return errors.Wrap(err, "unable to ping database")
	}

	p.log.WithField("host", connConfig.Host).Debug("connected to the session database")
	p.db = database
	return nil
}

func (p *postgres) DB() *sql.DB {
	return p.db
}

// StartTransaction begins a transaction and returns a context carrying it.
// Stores pick it up from the context so a caller can group their writes.
func (p *postgres) StartTransaction(ctx context.Context) (*sql.Tx, context.Context, error) {
	if p.db == nil {
		return nil, ctx, errors.New("database is not connected")
	}
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, ctx, errors.Wrap(err, "unable to start a transaction")
	}
	return tx, context.WithValue(ctx, ContextTransaction, tx), nil
}
