package db

import (
	"database/sql"
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/sirupsen/logrus"
	"jokerpoker/internal/util"
	"sync"

	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                 // needed
)

// DefaultDSN is used when neither the config nor PG_DSN provide one
const DefaultDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"

// DefaultMigrationsPath is where the SQL migrations live relative to the working directory
const DefaultMigrationsPath = "./sql"

var (
	instance   *sql.DB
	instanceMu sync.Mutex
)

// Instance returns a database instance
// The DSN is read from PG_DSN. Use SetInstance() to supply a connection opened elsewhere.
func Instance() *sql.DB {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance == nil {
		db, err := Open(util.Getenv("PG_DSN", DefaultDSN))
		if err != nil {
			panic(err)
		}

		instance = db
	}

	return instance
}

// SetInstance replaces the shared database instance
func SetInstance(db *sql.DB) {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	instance = db
}

// Open opens and pings a postgres database
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, nil
}

// Migrate runs the migrations found in migrationsPath
func Migrate(db *sql.DB, migrationsPath string) error {
	if migrationsPath == "" {
		migrationsPath = DefaultMigrationsPath
	}

	logrus.WithField("migrationsPath", migrationsPath).Info("running migrations")
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
