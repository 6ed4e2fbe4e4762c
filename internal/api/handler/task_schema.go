package handler

import "github.com/staffdesk/employee-task-api/internal/core/domain"

type createTaskRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"required,min=1"`
	Status      string  `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
	EmployeeID  *string `json:"employee_id"`
}

// updateTaskRequest is a partial update; absent fields stay unchanged.
// Assignment changes go through the assign/unassign endpoints.
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress completed"`
}

// taskWithEmployeeResponse is the detail view returned by GET /v1/tasks/:id.
type taskWithEmployeeResponse struct {
	*domain.Task
	Employee *domain.Employee `json:"employee"`
}
