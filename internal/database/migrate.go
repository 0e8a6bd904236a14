package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"auditpro/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	mdb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const DefaultMigrationsTable = "schema_migrations"

var errOpenByURL = errors.New("oracle migrate driver must be created with WithInstance")

// OracleDriver implements the golang-migrate database.Driver interface on top
// of a go-ora connection. Statements are split on a trailing semicolon, so
// migrations must not contain PL/SQL blocks.
type OracleDriver struct {
	db     *sql.DB
	table  string
	locked atomic.Bool
}

var _ mdb.Driver = (*OracleDriver)(nil)

// WithInstance wraps db and creates the version table when it is missing.
func WithInstance(db *sql.DB, table string) (*OracleDriver, error) {
	if table == "" {
		table = DefaultMigrationsTable
	}
	d := &OracleDriver{db: db, table: table}
	if err := d.ensureVersionTable(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *OracleDriver) ensureVersionTable() error {
	var count int
	query := "SELECT COUNT(*) FROM user_tables WHERE table_name = :1"
	if err := d.db.QueryRow(query, strings.ToUpper(d.table)).Scan(&count); err != nil {
		return &mdb.Error{OrigErr: err, Query: []byte(query)}
	}
	if count > 0 {
		return nil
	}
	create := fmt.Sprintf("CREATE TABLE %s (version NUMBER(19) NOT NULL, dirty NUMBER(1) NOT NULL)", d.table)
	if _, err := d.db.Exec(create); err != nil {
		return &mdb.Error{OrigErr: err, Query: []byte(create)}
	}
	return nil
}

func (d *OracleDriver) Open(url string) (mdb.Driver, error) {
	return nil, errOpenByURL
}

func (d *OracleDriver) Close() error {
	return d.db.Close()
}

// Lock guards against concurrent runs inside this process only.
func (d *OracleDriver) Lock() error {
	if !d.locked.CompareAndSwap(false, true) {
		return mdb.ErrLocked
	}
	return nil
}

func (d *OracleDriver) Unlock() error {
	if !d.locked.CompareAndSwap(true, false) {
		return mdb.ErrNotLocked
	}
	return nil
}

func (d *OracleDriver) Run(migration io.Reader) error {
	body, err := io.ReadAll(migration)
	if err != nil {
		return err
	}
	for _, stmt := range splitStatements(string(body)) {
		if _, err := d.db.Exec(stmt); err != nil {
			return &mdb.Error{OrigErr: err, Err: "migration failed", Query: []byte(stmt)}
		}
	}
	return nil
}

func (d *OracleDriver) SetVersion(version int, dirty bool) error {
	tx, err := d.db.BeginTx(context.Background(), nil)
	if err != nil {
		return &mdb.Error{OrigErr: err, Err: "transaction start failed"}
	}

	del := "DELETE FROM " + d.table
	if _, err := tx.Exec(del); err != nil {
		_ = tx.Rollback()
		return &mdb.Error{OrigErr: err, Query: []byte(del)}
	}

	// NilVersion is still recorded when dirty so a failed first migration is visible.
	if version >= 0 || (version == mdb.NilVersion && dirty) {
		ins := "INSERT INTO " + d.table + " (version, dirty) VALUES (:1, :2)"
		if _, err := tx.Exec(ins, version, boolToNumber(dirty)); err != nil {
			_ = tx.Rollback()
			return &mdb.Error{OrigErr: err, Query: []byte(ins)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &mdb.Error{OrigErr: err, Err: "transaction commit failed"}
	}
	return nil
}

func (d *OracleDriver) Version() (int, bool, error) {
	var version int64
	var dirty int
	query := "SELECT version, dirty FROM " + d.table + " FETCH FIRST 1 ROWS ONLY"
	err := d.db.QueryRow(query).Scan(&version, &dirty)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return mdb.NilVersion, false, nil
	case err != nil:
		return 0, false, &mdb.Error{OrigErr: err, Query: []byte(query)}
	}
	return int(version), dirty == 1, nil
}

// Drop removes every table owned by the connected user, the version table included.
func (d *OracleDriver) Drop() error {
	rows, err := d.db.Query("SELECT table_name FROM user_tables")
	if err != nil {
		return err
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		tables = append(tables, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, name := range tables {
		stmt := fmt.Sprintf("DROP TABLE %s CASCADE CONSTRAINTS PURGE", name)
		if _, err := d.db.Exec(stmt); err != nil {
			return &mdb.Error{OrigErr: err, Query: []byte(stmt)}
		}
	}
	return nil
}

func boolToNumber(b bool) int {
	if b {
		return 1
	}
	return 0
}

// splitStatements breaks a migration file into statements ending with ';' at
// the end of a line. Full-line "--" comments and blank statements are dropped.
func splitStatements(body string) []string {
	var (
		stmts []string
		cur   strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			stmts = append(stmts, s)
		}
		cur.Reset()
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			cur.WriteString(strings.TrimSuffix(strings.TrimRight(line, " \t\r"), ";"))
			flush()
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
	}
	flush()
	return stmts
}

// migrateLogger forwards golang-migrate progress to zap.
type migrateLogger struct {
	log *zap.Logger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return false
}

// Migrator applies the embedded schema migrations.
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator builds a migrator over the embedded migrations. Closing it
// closes db as well.
func NewMigrator(db *sql.DB, table string) (*Migrator, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	driver, err := WithInstance(db, table)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare migration table: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "oracle", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrator: %w", err)
	}
	m.Log = migrateLogger{log: logger.Get()}
	return &Migrator{m: m}, nil
}

// Up applies every pending migration. Being already current is not an error.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down rolls back steps migrations, or all of them when steps <= 0.
func (m *Migrator) Down(steps int) error {
	var err error
	if steps <= 0 {
		err = m.m.Down()
	} else {
		err = m.m.Steps(-steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version returns the applied version; zero means nothing has been applied.
func (m *Migrator) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}
