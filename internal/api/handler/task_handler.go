package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-task-api/internal/api/metrics"
	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /v1/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.service.Create(c.Request().Context(), ports.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		EmployeeID:  req.EmployeeID,
	})
	if err != nil {
		return err
	}

	metrics.TasksMutatedTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, t)
}

// List handles GET /v1/tasks. Public.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Param        skip         query     int     false  "Records to skip"  default(0)
// @Param        limit        query     int     false  "Maximum records"  default(100)
// @Param        status       query     string  false  "Filter by status"  Enums(pending, in_progress, completed)
// @Param        employee_id  query     string  false  "Filter by assigned employee"
// @Param        search       query     string  false  "Search in title and description"
// @Success      200          {object}  query.Result[*domain.Task]
// @Failure      400          {object}  errorResponse
// @Router       /v1/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	window, err := parseWindow(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.TaskFilter{
		Status:     c.QueryParam("status"),
		EmployeeID: c.QueryParam("employee_id"),
		Search:     c.QueryParam("search"),
		Window:     window,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get handles GET /v1/tasks/:id. Public; includes the assigned employee.
//
// @Summary      Get a task with its employee
// @Tags         tasks
// @Produce      json
// @Param        id  path      string  true  "Task ID"
// @Success      200  {object}  taskWithEmployeeResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tasks/{id} [get]
func (h *TaskHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskWithEmployeeResponse{
		Task:     detail.Task,
		Employee: detail.Employee,
	})
}

// Update handles PUT /v1/tasks/:id.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task ID"
// @Param        body  body      updateTaskRequest  true  "Fields to update"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/tasks/{id} [put]
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		s := domain.TaskStatus(*req.Status)
		status = &s
	}

	t, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	})
	if err != nil {
		return err
	}

	metrics.TasksMutatedTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /v1/tasks/:id. Admin only.
//
// @Summary      Delete a task
// @Tags         tasks
// @Security     BearerAuth
// @Param        id  path  string  true  "Task ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.TasksMutatedTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Assign handles POST /v1/tasks/:id/assign/:employee_id.
//
// @Summary      Assign a task to an employee
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true  "Task ID"
// @Param        employee_id  path      string  true  "Employee ID"
// @Success      200          {object}  domain.Task
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /v1/tasks/{id}/assign/{employee_id} [post]
func (h *TaskHandler) Assign(c echo.Context) error {
	t, err := h.service.Assign(c.Request().Context(), c.Param("id"), c.Param("employee_id"))
	if err != nil {
		return err
	}

	metrics.TasksMutatedTotal.WithLabelValues("assign").Inc()
	return c.JSON(http.StatusOK, t)
}

// Unassign handles POST /v1/tasks/:id/unassign. Clears the employee reference.
//
// @Summary      Unassign a task
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Task ID"
// @Success      200  {object}  domain.Task
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/tasks/{id}/unassign [post]
func (h *TaskHandler) Unassign(c echo.Context) error {
	t, err := h.service.Unassign(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.TasksMutatedTotal.WithLabelValues("unassign").Inc()
	return c.JSON(http.StatusOK, t)
}
