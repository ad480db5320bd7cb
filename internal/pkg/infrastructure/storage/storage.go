package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "homegraph"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows        = errors.New("no rows in result set")
	ErrTooManyRows   = errors.New("too many rows in result set")
	ErrQueryRow      = errors.New("could not execute query")
	ErrStoreFailed   = errors.New("could not store data")
	ErrAlreadyExists = errors.New("row already exists")
	ErrDeleted       = errors.New("deleted")
)

// querier is the subset of pgxpool.Pool and pgx.Tx that row operations need.
// A Storage backed by a pgx.Tx issues every statement inside that transaction.
type querier interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Storage struct {
	db   querier
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{db: pool, pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return NewWithPool(pool), nil
}

// InTx runs fn against a transaction scoped Storage. The transaction is
// rolled back when fn returns an error and committed otherwise, so either
// every mutation issued by fn lands or none does.
func (s *Storage) InTx(ctx context.Context, fn func(tx *Storage) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}

	err = fn(&Storage{db: tx})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS homes (
			home_id		TEXT	NOT NULL,
			user_id		TEXT	NOT NULL,
			app_code	TEXT	NOT NULL,
			owner_user_id	TEXT	NOT NULL,
			is_owner	BOOLEAN	NOT NULL DEFAULT FALSE,
			name		TEXT	NOT NULL,
			position	NUMERIC	NOT NULL DEFAULT 0,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted		BOOLEAN DEFAULT FALSE,
			deleted_on	timestamp with time zone NULL,
			CONSTRAINT pkey_homes_unique PRIMARY KEY (home_id, user_id, app_code, deleted)
		);

		CREATE TABLE IF NOT EXISTS areas (
			area_id		TEXT	NOT NULL,
			home_id		TEXT	NOT NULL,
			user_id		TEXT	NOT NULL,
			app_code	TEXT	NOT NULL,
			name		TEXT	NOT NULL,
			position	NUMERIC	NOT NULL DEFAULT 0,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted		BOOLEAN DEFAULT FALSE,
			deleted_on	timestamp with time zone NULL,
			CONSTRAINT pkey_areas_unique PRIMARY KEY (area_id, user_id, app_code, deleted)
		);

		CREATE TABLE IF NOT EXISTS devices (
			device_id	TEXT	NOT NULL,
			home_id		TEXT	NOT NULL,
			user_id		TEXT	NOT NULL,
			app_code	TEXT	NOT NULL,
			area_id		TEXT	NOT NULL DEFAULT '',
			parent_id	TEXT	NOT NULL DEFAULT '',
			family_name	TEXT	NOT NULL,
			type_code	TEXT	NOT NULL,
			is_controller	BOOLEAN	NOT NULL DEFAULT FALSE,
			category	TEXT	NOT NULL DEFAULT '',
			connection	TEXT	NOT NULL DEFAULT '',
			vendor		TEXT	NOT NULL DEFAULT '',
			name		TEXT	NOT NULL DEFAULT '',
			position	NUMERIC	NOT NULL DEFAULT 0,
			mac			TEXT	NOT NULL DEFAULT '',
			extra		JSONB	NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted		BOOLEAN DEFAULT FALSE,
			deleted_on	timestamp with time zone NULL,
			CONSTRAINT pkey_devices_unique PRIMARY KEY (device_id, user_id, app_code, deleted)
		);

		CREATE TABLE IF NOT EXISTS home_statistics (
			home_id		TEXT	NOT NULL,
			user_id		TEXT	NOT NULL,
			app_code	TEXT	NOT NULL,
			entities	BIGINT	NOT NULL DEFAULT 0,
			controllers	BIGINT	NOT NULL DEFAULT 0,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_home_statistics_unique PRIMARY KEY (home_id, user_id, app_code)
		);

		CREATE TABLE IF NOT EXISTS area_statistics (
			area_id		TEXT	NOT NULL,
			home_id		TEXT	NOT NULL,
			user_id		TEXT	NOT NULL,
			app_code	TEXT	NOT NULL,
			entities	BIGINT	NOT NULL DEFAULT 0,
			controllers	BIGINT	NOT NULL DEFAULT 0,
			modified_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_area_statistics_unique PRIMARY KEY (area_id, user_id, app_code)
		);

		CREATE INDEX IF NOT EXISTS devices_parent_idx ON devices (parent_id, user_id, app_code) WHERE NOT deleted;
		CREATE INDEX IF NOT EXISTS devices_home_idx ON devices (home_id, app_code) WHERE NOT deleted;
		CREATE INDEX IF NOT EXISTS areas_home_idx ON areas (home_id, user_id, app_code) WHERE NOT deleted;
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.CreateTables(ctx)
}

func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
