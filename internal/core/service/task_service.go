package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/ports"
	"github.com/staffdesk/employee-task-api/internal/core/query"
)

// TaskService implements task CRUD and the assign/unassign operations over
// the weak employee reference.
type TaskService struct {
	tasks     ports.TaskRepository
	employees ports.EmployeeRepository
	log       zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, employees ports.EmployeeRepository, log zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, employees: employees, log: log}
}

func (s *TaskService) Create(ctx context.Context, in ports.TaskInput) (*domain.Task, error) {
	if in.Status == "" {
		in.Status = domain.StatusPending
	}
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if in.EmployeeID != nil {
		if _, err := s.employees.FindByID(ctx, *in.EmployeeID); err != nil {
			return nil, err
		}
	}

	t := &domain.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		EmployeeID:  in.EmployeeID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.Info().Str("task_id", t.ID).Str("status", string(t.Status)).Msg("task created")
	return t, nil
}

// Get returns the task together with its assigned employee. A dangling
// reference (employee deleted out of band) degrades to an unassigned view
// rather than failing the read.
func (s *TaskService) Get(ctx context.Context, id string) (*ports.TaskWithEmployee, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := &ports.TaskWithEmployee{Task: t}
	if t.EmployeeID != nil {
		e, err := s.employees.FindByID(ctx, *t.EmployeeID)
		switch {
		case err == nil:
			out.Employee = e
		case errors.Is(err, domain.ErrEmployeeNotFound):
			s.log.Warn().Str("task_id", t.ID).Str("employee_id", *t.EmployeeID).Msg("dangling employee reference")
		default:
			return nil, err
		}
	}
	return out, nil
}

func (s *TaskService) List(ctx context.Context, filter ports.TaskFilter) (query.Result[*domain.Task], error) {
	if err := filter.Window.Validate(); err != nil {
		return query.Result[*domain.Task]{}, err
	}
	if filter.Status != "" && !domain.TaskStatus(filter.Status).IsValid() {
		return query.Result[*domain.Task]{}, fmt.Errorf("%w: unknown status %q", query.ErrInvalidParam, filter.Status)
	}
	items, total, err := s.tasks.List(ctx, filter)
	if err != nil {
		return query.Result[*domain.Task]{}, fmt.Errorf("list tasks: %w", err)
	}
	return query.NewResult(items, total, filter.Window), nil
}

func (s *TaskService) Update(ctx context.Context, id string, in ports.TaskUpdate) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Status != nil {
		if !in.Status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		t.Status = *in.Status
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	if _, err := s.tasks.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	s.log.Info().Str("task_id", id).Msg("task deleted")
	return nil
}

func (s *TaskService) Assign(ctx context.Context, taskID, employeeID string) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}

	t.EmployeeID = &employeeID
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("assign task: %w", err)
	}

	s.log.Info().Str("task_id", taskID).Str("employee_id", employeeID).Msg("task assigned")
	return t, nil
}

func (s *TaskService) Unassign(ctx context.Context, taskID string) (*domain.Task, error) {
	t, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	t.EmployeeID = nil
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("unassign task: %w", err)
	}

	s.log.Info().Str("task_id", taskID).Msg("task unassigned")
	return t, nil
}
