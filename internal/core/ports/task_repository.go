package ports

import (
	"context"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/query"
)

// TaskFilter carries the query parameters for listing tasks.
// Filters compose with AND; zero values impose no constraint.
type TaskFilter struct {
	Status     string // exact match on the task status
	EmployeeID string // exact match on the assigned employee
	Search     string // case-insensitive substring match on title or description
	Window     query.Window
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, int64, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Task, error)
	// UnassignEmployee clears employee_id on every task assigned to the given
	// employee. Called when the employee is deleted.
	UnassignEmployee(ctx context.Context, employeeID string) error
}
