package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"circus-admin/internal/model"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	FindByID(ctx context.Context, id int64) (*model.Employee, error)
	List(ctx context.Context) ([]*model.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type EmployeeRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &EmployeeRepositoryImpl{
		pool: pool,
	}
}

const employeeColumns = `id, name, position, phone, email, created_at, updated_at`

func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var employee model.Employee
	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Position,
		&employee.Phone,
		&employee.Email,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	query := `
		INSERT INTO employees (name, position, phone, email)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + employeeColumns

	return scanEmployee(r.pool.QueryRow(ctx, query,
		employee.Name, employee.Position, employee.Phone, employee.Email,
	))
}

func (r *EmployeeRepositoryImpl) Update(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	query := `
		UPDATE employees
		SET name = $1, position = $2, phone = $3, email = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(r.pool.QueryRow(ctx, query,
		employee.Name, employee.Position, employee.Phone, employee.Email,
		time.Now().UTC(), employee.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *EmployeeRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	employee, err := scanEmployee(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (r *EmployeeRepositoryImpl) List(ctx context.Context) ([]*model.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY name, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*model.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Delete 刪除不存在的 id 不視為錯誤
func (r *EmployeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: employee %d is still assigned to a performance or act", apperrors.ErrInvalidInput, id)
	}
	return err
}
