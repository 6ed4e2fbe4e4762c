package ports

import (
	"context"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/query"
)

// EmployeeFilter carries the query parameters for listing employees.
// Filters compose with AND; zero values impose no constraint.
type EmployeeFilter struct {
	Role   string // exact match on the job title
	Search string // case-insensitive substring match on name or email
	Window query.Window
}

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) error
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
	// List returns a page of employees matching filter and the total count
	// of matches before the window is applied.
	List(ctx context.Context, filter EmployeeFilter) ([]*domain.Employee, int64, error)
}
