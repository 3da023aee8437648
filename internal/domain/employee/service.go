package employee

import "context"

// EmployeeService defines business logic for roster management.
type EmployeeService interface {
	List(ctx context.Context, req ListEmployeesRequest) (ListEmployeesResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
