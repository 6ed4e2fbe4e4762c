package ports

import (
	"context"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/query"
)

// EmployeeInput carries the fields for creating an employee.
type EmployeeInput struct {
	Name  string
	Email string
	Role  string
	Phone string
}

// EmployeeUpdate carries a partial update; nil fields are left unchanged.
type EmployeeUpdate struct {
	Name  *string
	Email *string
	Role  *string
	Phone *string
}

// EmployeeWithTasks is the detail view: the employee plus their assigned tasks.
type EmployeeWithTasks struct {
	Employee *domain.Employee
	Tasks    []*domain.Task
}

// EmployeeService defines use-case operations for employees.
type EmployeeService interface {
	Create(ctx context.Context, in EmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, id string) (*EmployeeWithTasks, error)
	List(ctx context.Context, filter EmployeeFilter) (query.Result[*domain.Employee], error)
	Update(ctx context.Context, id string, in EmployeeUpdate) (*domain.Employee, error)
	// Delete removes the employee and clears the weak reference on any tasks
	// still assigned to it. Admin only (enforced at the transport layer).
	Delete(ctx context.Context, id string) error
}
