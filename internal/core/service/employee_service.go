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

// EmployeeService implements employee CRUD with unique-email enforcement and
// the task-unassignment cleanup on delete.
type EmployeeService struct {
	employees ports.EmployeeRepository
	tasks     ports.TaskRepository
	log       zerolog.Logger
}

func NewEmployeeService(employees ports.EmployeeRepository, tasks ports.TaskRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{employees: employees, tasks: tasks, log: log}
}

func (s *EmployeeService) Create(ctx context.Context, in ports.EmployeeInput) (*domain.Employee, error) {
	if err := s.checkEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	e := &domain.Employee{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.employees.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.log.Info().Str("employee_id", e.ID).Str("email", e.Email).Msg("employee created")
	return e, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*ports.EmployeeWithTasks, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByEmployee(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list employee tasks: %w", err)
	}
	return &ports.EmployeeWithTasks{Employee: e, Tasks: tasks}, nil
}

func (s *EmployeeService) List(ctx context.Context, filter ports.EmployeeFilter) (query.Result[*domain.Employee], error) {
	if err := filter.Window.Validate(); err != nil {
		return query.Result[*domain.Employee]{}, err
	}
	items, total, err := s.employees.List(ctx, filter)
	if err != nil {
		return query.Result[*domain.Employee]{}, fmt.Errorf("list employees: %w", err)
	}
	return query.NewResult(items, total, filter.Window), nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, in ports.EmployeeUpdate) (*domain.Employee, error) {
	e, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != e.Email {
		if err := s.checkEmailFree(ctx, *in.Email); err != nil {
			return nil, err
		}
		e.Email = *in.Email
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Role != nil {
		e.Role = *in.Role
	}
	if in.Phone != nil {
		e.Phone = *in.Phone
	}

	if err := s.employees.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return e, nil
}

// Delete removes the employee and nulls out the weak reference on their
// tasks. Tasks themselves survive the delete.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.employees.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if err := s.tasks.UnassignEmployee(ctx, id); err != nil {
		return fmt.Errorf("unassign tasks: %w", err)
	}

	s.log.Info().Str("employee_id", id).Msg("employee deleted")
	return nil
}

func (s *EmployeeService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.employees.FindByEmail(ctx, email)
	if err == nil {
		return domain.ErrEmployeeEmailTaken
	}
	if !errors.Is(err, domain.ErrEmployeeNotFound) {
		return err
	}
	return nil
}
