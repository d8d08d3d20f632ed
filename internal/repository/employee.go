package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/UnknownOlympus/mnemosyne/internal/models"
)

// EnsureSchema creates the employees table unless it already exists. Safe to
// call on every start; a second run against an existing table is a no-op.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("ensure_schema").Observe(duration)
	}()
	query := `
		CREATE TABLE IF NOT EXISTS employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			position TEXT NOT NULL,
			salary REAL
		);
	`

	if _, err := r.execInTx(ctx, "ensure_schema", query); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return nil
}

// Insert adds a new employee record and returns the number of rows written,
// which is 1 on success. The id is assigned by the database.
func (r *Repository) Insert(ctx context.Context, name, position string, salary float64) (int64, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("insert_employee").Observe(duration)
	}()
	query := `INSERT INTO employees (name, position, salary) VALUES (?, ?, ?)`

	rows, err := r.execInTx(ctx, "insert_employee", query, name, position, salary)
	if err != nil {
		return 0, fmt.Errorf("failed to insert employee: %w", err)
	}

	return rows, nil
}

// UpdateSalary sets the salary of the employee with the given id. A return of
// (0, nil) means no such employee exists; callers must not treat it as an error.
func (r *Repository) UpdateSalary(ctx context.Context, identifier int64, salary float64) (int64, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_salary").Observe(duration)
	}()
	query := `UPDATE employees SET salary = ? WHERE id = ?`

	rows, err := r.execInTx(ctx, "update_salary", query, salary, identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to update employee salary: %w", err)
	}

	return rows, nil
}

// Delete removes the employee with the given id. Same not-found semantics as
// UpdateSalary: (0, nil) when the id does not exist.
func (r *Repository) Delete(ctx context.Context, identifier int64) (int64, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_employee").Observe(duration)
	}()
	query := `DELETE FROM employees WHERE id = ?`

	rows, err := r.execInTx(ctx, "delete_employee", query, identifier)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee: %w", err)
	}

	return rows, nil
}

// ListAll returns every employee in the order the database yields them, which
// for this schema is ascending id.
func (r *Repository) ListAll(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_employees").Observe(duration)
	}()
	query := `SELECT id, name, position, salary FROM employees`

	employees, err := r.queryEmployees(ctx, "list_employees", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// FindByPosition returns the employees whose position contains the given
// substring. The substring is bound as a single LIKE parameter, never spliced
// into the SQL text.
func (r *Repository) FindByPosition(ctx context.Context, substring string) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("find_by_position").Observe(duration)
	}()
	query := `SELECT id, name, position, salary FROM employees WHERE position LIKE ?`

	employees, err := r.queryEmployees(ctx, "find_by_position", query, "%"+substring+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search employees by position: %w", err)
	}

	return employees, nil
}

// execInTx runs a single mutating statement inside its own transaction:
// begin, execute, commit before returning. On an execution failure the
// transaction is rolled back; a rollback failure is reported alongside the
// execution error that caused it. One statement per transaction, always.
func (r *Repository) execInTx(ctx context.Context, operation, query string, args ...any) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.metrics.Operations.WithLabelValues(operation, "failure").Inc()
		return 0, fmt.Errorf("%w: failed to begin transaction: %w", ErrExecution, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		r.metrics.Operations.WithLabelValues(operation, "failure").Inc()
		return 0, r.rollback(tx, fmt.Errorf("%w: %w", ErrExecution, err))
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.metrics.Operations.WithLabelValues(operation, "failure").Inc()
		return 0, r.rollback(tx, fmt.Errorf("%w: failed to read affected rows: %w", ErrExecution, err))
	}

	if err = tx.Commit(); err != nil {
		r.metrics.Operations.WithLabelValues(operation, "failure").Inc()
		return 0, fmt.Errorf("%w: failed to commit transaction: %w", ErrExecution, err)
	}

	r.metrics.Operations.WithLabelValues(operation, "success").Inc()

	return rows, nil
}

// rollback undoes the failed transaction and passes the execution error
// through. If the rollback itself fails, both failures are reported.
func (r *Repository) rollback(tx *sql.Tx, execErr error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		return fmt.Errorf("%w: %v (after: %w)", ErrRollback, rbErr, execErr)
	}

	return execErr
}

// queryEmployees streams a select over the employees columns through a single
// forward cursor, closed on every exit path.
func (r *Repository) queryEmployees(
	ctx context.Context,
	operation, query string,
	args ...any,
) ([]models.Employee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.metrics.Operations.WithLabelValues(operation, "failure").Inc()
		return nil, fmt.Errorf("%w: %w", ErrExecution, err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		var emp models.Employee
		var salary sql.NullFloat64 // the column is nullable; a NULL reads as 0
		if err = rows.Scan(&emp.ID, &emp.Name, &emp.Position, &salary); err != nil {
			r.metrics.Operations.WithLabelValues(operation, "failure").Inc()
			return nil, fmt.Errorf("%w: failed to scan employee row: %w", ErrExecution, err)
		}
		emp.Salary = salary.Float64
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		r.metrics.Operations.WithLabelValues(operation, "failure").Inc()
		return nil, fmt.Errorf("%w: %w", ErrExecution, err)
	}

	r.metrics.Operations.WithLabelValues(operation, "success").Inc()

	return employees, nil
}
