package employees

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/dbx"
)

const selectEmployees = `SELECT id, name, department, salary, date_of_birth FROM employees ORDER BY id`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]Employee, error) {
	rows, err := r.db.QueryContext(ctx, selectEmployees+` LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]Employee, 0, limit)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Each(ctx context.Context, limit int, fn func(Employee) error) error {
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, selectEmployees+` LIMIT $1`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, selectEmployees)
	}
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func scanEmployee(rows *sql.Rows) (Employee, error) {
	var (
		e   Employee
		dob time.Time
	)
	if err := rows.Scan(&e.ID, &e.Name, &e.Department, &e.Salary, &dob); err != nil {
		return Employee{}, fmt.Errorf("scan error: %w", err)
	}
	e.DateOfBirth = dob.Format(time.DateOnly)
	return e, nil
}
