package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// go-ora takes :name placeholders, and sqlx does not know the driver name.
func init() {
	sqlx.BindDriver("oracle", sqlx.NAMED)
}

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedQueryContext(ctx context.Context, query string, arg interface{}) (*sqlx.Rows, error)
	Rebind(query string) string
}

// expectOneRow turns a zero-row update into a not found error for entity.
func expectOneRow(result sql.Result, entity, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound(entity, id)
	}
	return nil
}
