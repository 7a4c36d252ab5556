package service

import (
	"context"
	"testing"

	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
)

func newUserService() *UserService {
	queries, commands, _ := newUserStack(newStubUserRepo(), newStubOfficeRepo())
	return NewUserService(queries, commands)
}

func TestUserService_CreateThenGetByID_RoundTrip(t *testing.T) {
	svc := newUserService()

	created, err := svc.Create(context.Background(), ports.UserInput{
		Name: "Alice", Email: "alice@example.com", Password: "plain", Rol: "admin",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	fetched, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if fetched.Name != "Alice" || fetched.Email != "alice@example.com" || fetched.Rol != "admin" {
		t.Fatalf("round-trip mismatch: %+v", fetched)
	}
	if fetched.Password == "plain" {
		t.Fatalf("stored password equals the submitted plaintext")
	}
	if fetched.ID == "" {
		t.Fatalf("missing server-assigned id")
	}
}

func TestUserService_GetByEmail(t *testing.T) {
	svc := newUserService()

	created, _ := svc.Create(context.Background(), ports.UserInput{
		Name: "Bob", Email: "bob@example.com", Password: "p", Rol: "admin",
	})

	found, err := svc.GetByEmail(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("unexpected user: %+v", found)
	}

	if _, err := svc.GetByEmail(context.Background(), "ghost@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_GetAll(t *testing.T) {
	svc := newUserService()

	_, _ = svc.Create(context.Background(), ports.UserInput{Name: "A", Email: "a@x.com", Password: "p", Rol: "admin"})
	_, _ = svc.Create(context.Background(), ports.UserInput{Name: "B", Email: "b@x.com", Password: "p", Rol: "user"})

	users, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserService_DeleteThenGet(t *testing.T) {
	svc := newUserService()

	created, _ := svc.Create(context.Background(), ports.UserInput{
		Name: "C", Email: "c@x.com", Password: "p", Rol: "admin",
	})

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
