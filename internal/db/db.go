// Package db connects to Postgres and applies generated statements.
package db

import (
	"context"
	"database/sql"

	"github.com/schemata-dev/schemata/internal/qerr"
	"github.com/schemata-dev/schemata/internal/schema"
)

// Open connects to the database described by cfg and verifies the
// connection. The caller imports the postgres driver.
func Open(ctx context.Context, cfg *Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, qerr.New(qerr.ErrConfigLoad, "DATABASE_URL is not set")
	}

	conn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, qerr.Wrap(qerr.ErrSQLConnection, err, "failed to open database connection")
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, qerr.Wrap(qerr.ErrSQLConnection, err, "failed to ping database")
	}
	return conn, nil
}

// Statements returns the full DDL plan for the descriptors in apply
// order: all tables first, then enum constraints, then foreign keys.
// Tables before constraints means a foreign key never references a
// table that does not exist yet.
func Statements(descriptors []*schema.Descriptor) []string {
	var statements []string

	for _, d := range descriptors {
		statements = append(statements, d.CreateTableSQL())
	}
	for _, d := range descriptors {
		statements = append(statements, d.EnumConstraintsSQL()...)
	}
	for _, d := range descriptors {
		statements = append(statements, d.TableConstraintsSQL()...)
	}

	return statements
}

// Apply executes the statements in a single transaction. Every
// statement is idempotent, so re-running a plan against an existing
// database is safe.
func Apply(ctx context.Context, conn *sql.DB, statements []string) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return qerr.Wrap(qerr.ErrSQLTransaction, err, "failed to begin transaction")
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return qerr.Wrap(qerr.ErrSQLExecution, err, "statement failed").
				WithSQL(stmt)
		}
	}

	if err := tx.Commit(); err != nil {
		return qerr.Wrap(qerr.ErrSQLTransaction, err, "failed to commit transaction")
	}
	return nil
}
