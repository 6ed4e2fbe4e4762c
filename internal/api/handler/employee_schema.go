package handler

import "github.com/staffdesk/employee-task-api/internal/core/domain"

type createEmployeeRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required,min=1,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=30"`
}

// updateEmployeeRequest is a partial update; absent fields stay unchanged.
type updateEmployeeRequest struct {
	Name  *string `json:"name"  validate:"omitempty,min=1,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"  validate:"omitempty,min=1,max=100"`
	Phone *string `json:"phone" validate:"omitempty,max=30"`
}

// employeeWithTasksResponse is the detail view returned by GET /v1/employees/:id.
type employeeWithTasksResponse struct {
	*domain.Employee
	Tasks []*domain.Task `json:"tasks"`
}
