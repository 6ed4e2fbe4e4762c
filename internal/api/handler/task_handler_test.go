package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/ports"
	"github.com/staffdesk/employee-task-api/internal/core/query"
)

type stubTaskService struct {
	createFn   func(ctx context.Context, in ports.TaskInput) (*domain.Task, error)
	getFn      func(ctx context.Context, id string) (*ports.TaskWithEmployee, error)
	listFn     func(ctx context.Context, filter ports.TaskFilter) (query.Result[*domain.Task], error)
	updateFn   func(ctx context.Context, id string, in ports.TaskUpdate) (*domain.Task, error)
	deleteFn   func(ctx context.Context, id string) error
	assignFn   func(ctx context.Context, taskID, employeeID string) (*domain.Task, error)
	unassignFn func(ctx context.Context, taskID string) (*domain.Task, error)
}

func (s *stubTaskService) Create(ctx context.Context, in ports.TaskInput) (*domain.Task, error) {
	return s.createFn(ctx, in)
}

func (s *stubTaskService) Get(ctx context.Context, id string) (*ports.TaskWithEmployee, error) {
	return s.getFn(ctx, id)
}

func (s *stubTaskService) List(ctx context.Context, filter ports.TaskFilter) (query.Result[*domain.Task], error) {
	return s.listFn(ctx, filter)
}

func (s *stubTaskService) Update(ctx context.Context, id string, in ports.TaskUpdate) (*domain.Task, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubTaskService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubTaskService) Assign(ctx context.Context, taskID, employeeID string) (*domain.Task, error) {
	return s.assignFn(ctx, taskID, employeeID)
}

func (s *stubTaskService) Unassign(ctx context.Context, taskID string) (*domain.Task, error) {
	return s.unassignFn(ctx, taskID)
}

func TestTaskHandler_Create(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(_ context.Context, in ports.TaskInput) (*domain.Task, error) {
			return &domain.Task{ID: "t-1", Title: in.Title, Status: domain.StatusPending}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/v1/tasks",
		`{"title":"Ship it","description":"Release the feature"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var task domain.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if task.ID != "t-1" || task.Status != domain.StatusPending {
		t.Fatalf("unexpected body: %+v", task)
	}
}

func TestTaskHandler_Create_Validation(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(_ context.Context, _ ports.TaskInput) (*domain.Task, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	cases := []string{
		`{"description":"no title"}`,
		`{"title":"Ship it"}`,
		`{"title":"Ship it","description":"x","status":"done"}`,
	}
	for _, body := range cases {
		c, _ := newTestContext(t, http.MethodPost, "/v1/tasks", body)
		err := h.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %v", body, err)
		}
	}
}

func TestTaskHandler_List(t *testing.T) {
	var captured ports.TaskFilter
	stub := &stubTaskService{
		listFn: func(_ context.Context, filter ports.TaskFilter) (query.Result[*domain.Task], error) {
			captured = filter
			return query.NewResult([]*domain.Task{{ID: "t-1"}}, 3, filter.Window), nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodGet,
		"/v1/tasks?status=pending&employee_id=e-1&search=ship&skip=1&limit=2", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Status != "pending" || captured.EmployeeID != "e-1" || captured.Search != "ship" {
		t.Fatalf("filter not forwarded: %+v", captured)
	}
	if captured.Window.Skip != 1 || captured.Window.Limit != 2 {
		t.Fatalf("window not forwarded: %+v", captured.Window)
	}
}

func TestTaskHandler_Get(t *testing.T) {
	stub := &stubTaskService{
		getFn: func(_ context.Context, id string) (*ports.TaskWithEmployee, error) {
			return &ports.TaskWithEmployee{
				Task:     &domain.Task{ID: id, Title: "Ship it"},
				Employee: nil,
			}, nil
		},
	}
	h := NewTaskHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/tasks/t-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("t-1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// An unassigned task renders employee as null, not absent.
	if v, present := resp["employee"]; !present || v != nil {
		t.Fatalf("expected explicit null employee, got %+v", resp)
	}
}

func TestTaskHandler_Update_StatusOnly(t *testing.T) {
	var captured ports.TaskUpdate
	stub := &stubTaskService{
		updateFn: func(_ context.Context, id string, in ports.TaskUpdate) (*domain.Task, error) {
			captured = in
			return &domain.Task{ID: id, Status: *in.Status}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/v1/tasks/t-1", `{"status":"in_progress"}`)
	c.SetParamNames("id")
	c.SetParamValues("t-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Status == nil || *captured.Status != domain.StatusInProgress {
		t.Fatalf("status not forwarded: %+v", captured)
	}
	if captured.Title != nil || captured.Description != nil {
		t.Fatalf("absent fields should be nil: %+v", captured)
	}
}

func TestTaskHandler_AssignAndUnassign(t *testing.T) {
	emp := "e-1"
	stub := &stubTaskService{
		assignFn: func(_ context.Context, taskID, employeeID string) (*domain.Task, error) {
			if taskID != "t-1" || employeeID != "e-1" {
				t.Fatalf("unexpected args: %s %s", taskID, employeeID)
			}
			return &domain.Task{ID: taskID, EmployeeID: &emp}, nil
		},
		unassignFn: func(_ context.Context, taskID string) (*domain.Task, error) {
			return &domain.Task{ID: taskID}, nil
		},
	}
	h := NewTaskHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/tasks/t-1/assign/e-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "employee_id")
	c.SetParamValues("t-1", "e-1")

	if err := h.Assign(c); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/tasks/t-1/unassign", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("t-1")

	if err := h.Unassign(c); err != nil {
		t.Fatalf("Unassign: %v", err)
	}

	var task map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if task["employee_id"] != nil {
		t.Fatalf("expected null employee_id after unassign, got %v", task["employee_id"])
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "t-1" {
				return domain.ErrTaskNotFound
			}
			return nil
		},
	}
	h := NewTaskHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/tasks/t-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("t-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/v1/tasks/nope", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("nope")
	if err := h.Delete(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
