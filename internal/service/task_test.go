package service

import (
	"context"
	"testing"
	"time"

	"github.com/tellis/tellis-go/internal/apperr"
	"github.com/tellis/tellis-go/internal/model"
	"github.com/tellis/tellis-go/internal/repository"
)

func strptr(s string) *string { return &s }

// newTestTaskService wires a task service and two registered users over one
// in-memory database.
func newTestTaskService(t *testing.T) (*TaskService, string, string) {
	t.Helper()

	db := newTestDB(t)
	auth := NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)

	ctx := context.Background()
	alice, _, err := auth.Register(ctx, model.RegisterRequest{Name: "Ann", Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	bob, _, err := auth.Register(ctx, model.RegisterRequest{Name: "Bob", Email: "b@x.com", Password: "secret2"})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	return NewTaskService(repository.NewTaskRepository(db)), alice.ID, bob.ID
}

func TestTaskCreateValidation(t *testing.T) {
	svc, alice, _ := newTestTaskService(t)
	ctx := context.Background()

	for _, req := range []model.CreateTaskRequest{
		{Name: "", Description: "D1"},
		{Name: "T1", Description: ""},
	} {
		_, err := svc.Create(ctx, alice, req)
		if apperr.KindOf(err) != apperr.Validation {
			t.Errorf("Create(%+v) kind = %v, want Validation", req, apperr.KindOf(err))
		}
	}
}

func TestTaskRoundTrip(t *testing.T) {
	svc, alice, _ := newTestTaskService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, alice, model.CreateTaskRequest{Name: "T1", Description: "D1"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	got, err := svc.Get(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.Name != "T1" || got.Description != "D1" || got.UserID != alice {
		t.Errorf("Get() = %+v, want the created task", got)
	}

	updated, err := svc.Update(ctx, alice, created.ID, model.UpdateTaskRequest{
		Name: strptr("T1 renamed"),
	})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.Name != "T1 renamed" {
		t.Errorf("Update() name = %s", updated.Name)
	}
	if updated.Description != "D1" {
		t.Error("Update() must leave omitted fields unchanged")
	}
	if updated.ID != created.ID || updated.UserID != alice {
		t.Error("Update() must not change id or owner")
	}

	if err := svc.Delete(ctx, alice, created.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	_, err = svc.Get(ctx, alice, created.ID)
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("Get() after delete kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestTaskUpdateNothing(t *testing.T) {
	svc, alice, _ := newTestTaskService(t)

	_, err := svc.Update(context.Background(), alice, "any-id", model.UpdateTaskRequest{})
	if apperr.KindOf(err) != apperr.Validation {
		t.Errorf("Update() with no fields kind = %v, want Validation", apperr.KindOf(err))
	}
}

// Cross-user access reports NotFound on every path so a foreign task id is
// indistinguishable from a missing one.
func TestTaskCrossUserIsolation(t *testing.T) {
	svc, alice, bob := newTestTaskService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, alice, model.CreateTaskRequest{Name: "T1", Description: "D1"})
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if _, err := svc.Get(ctx, bob, task.ID); apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("Get() as non-owner kind = %v, want NotFound", apperr.KindOf(err))
	}
	if _, err := svc.Update(ctx, bob, task.ID, model.UpdateTaskRequest{Name: strptr("x")}); apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("Update() as non-owner kind = %v, want NotFound", apperr.KindOf(err))
	}
	if err := svc.Delete(ctx, bob, task.ID); apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("Delete() as non-owner kind = %v, want NotFound", apperr.KindOf(err))
	}

	bobTasks, err := svc.List(ctx, bob)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(bobTasks) != 0 {
		t.Errorf("List() as non-owner returned %d tasks", len(bobTasks))
	}

	// Alice still owns the intact task.
	got, err := svc.Get(ctx, alice, task.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.Name != "T1" {
		t.Errorf("task changed by non-owner: %+v", got)
	}
}
