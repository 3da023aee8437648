package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendit/attendit-backend-go/internal/domain/employee"
	"github.com/attendit/attendit-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// ListAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, department, position, employee_code, created_at, updated_at
		FROM employees
		ORDER BY name, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Page implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Page(ctx context.Context, size int, cursor employee.Cursor, filter string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, department, position, employee_code, created_at, updated_at
		FROM employees
		WHERE ($1::text = '' OR (name, id) > ($1, $2))
		  AND ($3::text = '' OR
			   name ILIKE '%' || $3 || '%' OR
			   email ILIKE '%' || $3 || '%' OR
			   department ILIKE '%' || $3 || '%' OR
			   position ILIKE '%' || $3 || '%' OR
			   employee_code ILIKE '%' || $3 || '%')
		ORDER BY name, id
		LIMIT $4
	`

	rows, err := q.Query(ctx, query, cursor.Name, cursor.ID, filter, size)
	if err != nil {
		return nil, fmt.Errorf("failed to page employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, email, department, position, employee_code, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Email, &emp.Department,
		&emp.Position, &emp.EmployeeCode, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name, email, department, position, employee_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.Name,
		newEmployee.Email,
		newEmployee.Department,
		newEmployee.Position,
		newEmployee.EmployeeCode,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, email = $2, department = $3, position = $4, employee_code = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.Name, emp.Email, emp.Department, emp.Position, emp.EmployeeCode, emp.ID,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ExistsByCodeOrEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByCodeOrEmail(ctx context.Context, excludeID, employeeCode, email string) (bool, bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT
			EXISTS (SELECT 1 FROM employees WHERE employee_code = $1 AND id <> $3),
			EXISTS (SELECT 1 FROM employees WHERE email = $2 AND id <> $3)
	`

	var codeTaken, emailTaken bool
	if err := q.QueryRow(ctx, query, employeeCode, email, excludeID).Scan(&codeTaken, &emailTaken); err != nil {
		return false, false, fmt.Errorf("failed to check employee uniqueness: %w", err)
	}

	return codeTaken, emailTaken, nil
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Email, &emp.Department,
			&emp.Position, &emp.EmployeeCode, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
