package employee

import (
	"context"
	"fmt"

	"github.com/attendit/attendit-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

const defaultPageSize = 20

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context, req employee.ListEmployeesRequest) (employee.ListEmployeesResponse, error) {
	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}

	cursor, err := employee.DecodeCursor(req.Cursor)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	// Fetch one extra row to know whether another page exists.
	employees, err := s.employeeRepo.Page(ctx, limit+1, cursor, req.Search)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	hasMore := len(employees) > limit
	if hasMore {
		employees = employees[:limit]
	}

	resp := employee.ListEmployeesResponse{
		Employees: make([]employee.EmployeeResponse, 0, len(employees)),
		HasMore:   hasMore,
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, employee.ToResponse(emp))
	}
	if hasMore && len(employees) > 0 {
		last := employees[len(employees)-1]
		resp.NextCursor = employee.EncodeCursor(employee.Cursor{Name: last.Name, ID: last.ID})
	}

	return resp, nil
}

// Get implements employee.EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	codeTaken, emailTaken, err := s.employeeRepo.ExistsByCodeOrEmail(ctx, "", req.EmployeeCode, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee uniqueness: %w", err)
	}
	if codeTaken {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}
	if emailTaken {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	newEmployee := employee.Employee{
		ID:           uuid.Must(uuid.NewV7()).String(),
		Name:         req.Name,
		Email:        req.Email,
		Department:   req.Department,
		Position:     req.Position,
		EmployeeCode: req.EmployeeCode,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee.ToResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.EmployeeCode != nil {
		emp.EmployeeCode = *req.EmployeeCode
	}

	if req.EmployeeCode != nil || req.Email != nil {
		codeTaken, emailTaken, err := s.employeeRepo.ExistsByCodeOrEmail(ctx, id, emp.EmployeeCode, emp.Email)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee uniqueness: %w", err)
		}
		if req.EmployeeCode != nil && codeTaken {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
		if req.Email != nil && emailTaken {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.ToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
