package ports

import (
	"context"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/query"
)

// TaskInput carries the fields for creating a task.
type TaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	EmployeeID  *string // optional assignment at creation time
}

// TaskUpdate carries a partial update; nil fields are left unchanged.
// Assignment changes go through Assign/Unassign, not Update.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskWithEmployee is the detail view: the task plus the assigned employee,
// when one exists.
type TaskWithEmployee struct {
	Task     *domain.Task
	Employee *domain.Employee
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	Create(ctx context.Context, in TaskInput) (*domain.Task, error)
	Get(ctx context.Context, id string) (*TaskWithEmployee, error)
	List(ctx context.Context, filter TaskFilter) (query.Result[*domain.Task], error)
	Update(ctx context.Context, id string, in TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, taskID, employeeID string) (*domain.Task, error)
	Unassign(ctx context.Context, taskID string) (*domain.Task, error)
}
