package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-task-api/internal/api/metrics"
	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /v1/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	e, err := h.service.Create(c.Request().Context(), ports.EmployeeInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.EmployeesMutatedTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, e)
}

// List handles GET /v1/employees. Public.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        skip    query     int     false  "Records to skip"     default(0)
// @Param        limit   query     int     false  "Maximum records"     default(100)
// @Param        role    query     string  false  "Filter by job title (exact match)"
// @Param        search  query     string  false  "Search in name and email"
// @Success      200     {object}  query.Result[*domain.Employee]
// @Failure      400     {object}  errorResponse
// @Router       /v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	window, err := parseWindow(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.Request().Context(), ports.EmployeeFilter{
		Role:   c.QueryParam("role"),
		Search: c.QueryParam("search"),
		Window: window,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Get handles GET /v1/employees/:id. Public; includes assigned tasks.
//
// @Summary      Get an employee with their tasks
// @Tags         employees
// @Produce      json
// @Param        id  path      string  true  "Employee ID"
// @Success      200  {object}  employeeWithTasksResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	tasks := detail.Tasks
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return c.JSON(http.StatusOK, employeeWithTasksResponse{
		Employee: detail.Employee,
		Tasks:    tasks,
	})
}

// Update handles PUT /v1/employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Employee ID"
// @Param        body  body      updateEmployeeRequest  true  "Fields to update"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	e, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.EmployeeUpdate{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}

	metrics.EmployeesMutatedTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /v1/employees/:id. Admin only; assigned tasks are
// unassigned, not deleted.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  string  true  "Employee ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EmployeesMutatedTotal.WithLabelValues("delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
