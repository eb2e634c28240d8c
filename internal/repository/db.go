package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/cradoe/biodata/assets"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/lib/pq"
)

const defaultTimeout = 3 * time.Second

// Database interface defines available repositories
type Database interface {
	Records() RecordRepository

	Close() error
	Ping(ctx context.Context) error
}

// DatabaseImpl implements the Database interface
type DatabaseImpl struct {
	db         *sqlx.DB
	recordRepo RecordRepository

	mu sync.Mutex
}

// New initializes a database connection and runs migrations if enabled
func New(dsn string, automigrate bool) (*DatabaseImpl, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", "postgres://"+dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	if automigrate {
		if err := Migrate("postgres://" + dsn); err != nil {
			return nil, err
		}
	}

	return &DatabaseImpl{db: db}, nil
}

// NewFromDB wraps an already opened connection. Tests use it with sqlite.
func NewFromDB(db *sqlx.DB) *DatabaseImpl {
	return &DatabaseImpl{db: db}
}

// Migrate applies the embedded migrations to the database at url.
func Migrate(url string) error {
	iofsDriver, err := iofs.New(assets.EmbeddedFiles, "migrations")
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", iofsDriver, url)
	if err != nil {
		return err
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func (d *DatabaseImpl) Close() error {
	return d.db.Close()
}

func (d *DatabaseImpl) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DatabaseImpl) Records() RecordRepository {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.recordRepo == nil {
		d.recordRepo = NewRecordRepository(d.db)
	}
	return d.recordRepo
}

// builderFor picks the placeholder style of the driver behind db.
func builderFor(db *sqlx.DB) sq.StatementBuilderType {
	if db.DriverName() == "postgres" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
