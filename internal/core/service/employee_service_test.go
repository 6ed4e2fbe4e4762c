package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/ports"
	"github.com/staffdesk/employee-task-api/internal/core/query"
)

type stubEmployeeRepo struct {
	employees map[string]*domain.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[string]*domain.Employee)}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) error {
	r.employees[e.ID] = cloneEmployee(e)
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	if e, ok := r.employees[id]; ok {
		return cloneEmployee(e), nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	r.employees[e.ID] = cloneEmployee(e)
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *stubEmployeeRepo) List(_ context.Context, filter ports.EmployeeFilter) ([]*domain.Employee, int64, error) {
	var matched []*domain.Employee
	for _, e := range r.employees {
		if filter.Role != "" && e.Role != filter.Role {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(e.Name), needle) &&
				!strings.Contains(strings.ToLower(e.Email), needle) {
				continue
			}
		}
		matched = append(matched, cloneEmployee(e))
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	lo, hi := filter.Window.Bounds(len(matched))
	return matched[lo:hi], int64(len(matched)), nil
}

func newEmployeeFixture() (*EmployeeService, *stubEmployeeRepo, *stubTaskRepo) {
	employees := newStubEmployeeRepo()
	tasks := newStubTaskRepo()
	return NewEmployeeService(employees, tasks, zerolog.Nop()), employees, tasks
}

func TestEmployeeService_Create(t *testing.T) {
	svc, _, _ := newEmployeeFixture()

	e, err := svc.Create(context.Background(), ports.EmployeeInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Role:  "engineer",
		Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if e.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}

	// Email uniqueness.
	_, err = svc.Create(context.Background(), ports.EmployeeInput{
		Name:  "Other",
		Email: "jane@example.com",
		Role:  "manager",
	})
	if !errors.Is(err, domain.ErrEmployeeEmailTaken) {
		t.Fatalf("expected ErrEmployeeEmailTaken, got %v", err)
	}
}

func TestEmployeeService_Get_WithTasks(t *testing.T) {
	svc, _, tasks := newEmployeeFixture()

	e, err := svc.Create(context.Background(), ports.EmployeeInput{Name: "Jane", Email: "jane@example.com", Role: "engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	tasks.add(&domain.Task{ID: "t-1", Title: "Ship it", Status: domain.StatusPending, EmployeeID: &e.ID})
	tasks.add(&domain.Task{ID: "t-2", Title: "Unrelated", Status: domain.StatusPending})

	got, err := svc.Get(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Employee.ID != e.ID {
		t.Fatalf("wrong employee: %+v", got.Employee)
	}
	if len(got.Tasks) != 1 || got.Tasks[0].ID != "t-1" {
		t.Fatalf("expected the one assigned task, got %+v", got.Tasks)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_List_FiltersAndWindow(t *testing.T) {
	svc, _, _ := newEmployeeFixture()

	for i := 0; i < 5; i++ {
		role := "engineer"
		if i%2 == 1 {
			role = "manager"
		}
		if _, err := svc.Create(context.Background(), ports.EmployeeInput{
			Name:  fmt.Sprintf("Person %d", i),
			Email: fmt.Sprintf("person%d@example.com", i),
			Role:  role,
		}); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}

	res, err := svc.List(context.Background(), ports.EmployeeFilter{Window: query.DefaultWindow()})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if res.Total != 5 || len(res.Items) != 5 {
		t.Fatalf("unfiltered: total=%d items=%d", res.Total, len(res.Items))
	}

	res, err = svc.List(context.Background(), ports.EmployeeFilter{Role: "manager", Window: query.DefaultWindow()})
	if err != nil {
		t.Fatalf("List by role: %v", err)
	}
	if res.Total != 2 {
		t.Fatalf("role filter: total=%d, want 2", res.Total)
	}

	// Search is a case-insensitive substring match on name or email.
	res, err = svc.List(context.Background(), ports.EmployeeFilter{Search: "PERSON3", Window: query.DefaultWindow()})
	if err != nil {
		t.Fatalf("List by search: %v", err)
	}
	if res.Total != 1 || res.Items[0].Email != "person3@example.com" {
		t.Fatalf("search filter: %+v", res.Items)
	}

	// Total reflects the filtered set even when the window trims the page.
	res, err = svc.List(context.Background(), ports.EmployeeFilter{Window: query.Window{Skip: 3, Limit: 10}})
	if err != nil {
		t.Fatalf("List windowed: %v", err)
	}
	if res.Total != 5 || len(res.Items) != 2 {
		t.Fatalf("windowed: total=%d items=%d", res.Total, len(res.Items))
	}

	// Out-of-range windows are rejected, not clamped.
	if _, err := svc.List(context.Background(), ports.EmployeeFilter{Window: query.Window{Skip: -1}}); !errors.Is(err, query.ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam, got %v", err)
	}
}

func TestEmployeeService_Update(t *testing.T) {
	svc, _, _ := newEmployeeFixture()

	e, err := svc.Create(context.Background(), ports.EmployeeInput{Name: "Jane", Email: "jane@example.com", Role: "engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.EmployeeInput{Name: "Bob", Email: "bob@example.com", Role: "manager"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	newName := "Jane Smith"
	updated, err := svc.Update(context.Background(), e.ID, ports.EmployeeUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Jane Smith" || updated.Email != "jane@example.com" {
		t.Fatalf("partial update wrong: %+v", updated)
	}

	// Changing email to one already in use is rejected.
	taken := "bob@example.com"
	if _, err := svc.Update(context.Background(), e.ID, ports.EmployeeUpdate{Email: &taken}); !errors.Is(err, domain.ErrEmployeeEmailTaken) {
		t.Fatalf("expected ErrEmployeeEmailTaken, got %v", err)
	}

	// Re-submitting the current email is not a conflict.
	same := "jane@example.com"
	if _, err := svc.Update(context.Background(), e.ID, ports.EmployeeUpdate{Email: &same}); err != nil {
		t.Fatalf("same email update: %v", err)
	}

	if _, err := svc.Update(context.Background(), "missing", ports.EmployeeUpdate{Name: &newName}); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeService_Delete_UnassignsTasks(t *testing.T) {
	svc, employees, tasks := newEmployeeFixture()

	e, err := svc.Create(context.Background(), ports.EmployeeInput{Name: "Jane", Email: "jane@example.com", Role: "engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	tasks.add(&domain.Task{ID: "t-1", Title: "Ship it", Status: domain.StatusPending, EmployeeID: &e.ID})

	if err := svc.Delete(context.Background(), e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := employees.employees[e.ID]; ok {
		t.Fatalf("employee should be gone")
	}
	if got := tasks.tasks["t-1"]; got.EmployeeID != nil {
		t.Fatalf("task should be unassigned after employee delete, got %v", *got.EmployeeID)
	}

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
