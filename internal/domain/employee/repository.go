package employee

import "context"

type EmployeeRepository interface {
	// ListAll returns the full roster ordered by name. Used by the
	// aggregation engine and the bulk-mark helpers.
	ListAll(ctx context.Context) ([]Employee, error)

	// Page returns one page of employees using keyset pagination. An empty
	// cursor starts from the beginning; filter, when set, matches name,
	// email, department, position and employee code case-insensitively.
	Page(ctx context.Context, size int, cursor Cursor, filter string) ([]Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	ExistsByCodeOrEmail(ctx context.Context, excludeID, employeeCode, email string) (codeTaken, emailTaken bool, err error)
}

// Cursor marks the position after the last employee of the previous page.
// Ordering is (name, id), so both fields are needed to resume.
type Cursor struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

func (c Cursor) IsZero() bool {
	return c.Name == "" && c.ID == ""
}
