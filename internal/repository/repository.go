package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/UnknownOlympus/mnemosyne/internal/models"
)

// Failure categories surfaced by the store. A failed rollback always carries
// the execution error that triggered it, so errors.Is matches both.
var (
	ErrSchema    = errors.New("schema statement failed")
	ErrExecution = errors.New("statement execution failed")
	ErrRollback  = errors.New("transaction rollback failed")
)

// Database is the subset of *sql.DB the repository needs. Reads run on the
// connection directly; every write goes through its own transaction.
type Database interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
// Mutating operations return the number of rows affected; zero rows with a nil
// error means the targeted record does not exist, which is not a failure.
type EmployeeRepoIface interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, name, position string, salary float64) (int64, error)
	UpdateSalary(ctx context.Context, identifier int64, salary float64) (int64, error)
	Delete(ctx context.Context, identifier int64) (int64, error)
	ListAll(ctx context.Context) ([]models.Employee, error)
	FindByPosition(ctx context.Context, substring string) ([]models.Employee, error)
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}
