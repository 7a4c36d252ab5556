package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tiempovital/admin-api/internal/core/command"
	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
	"github.com/tiempovital/admin-api/internal/core/query"
)

func newOfficeService(users *stubUserRepo) *OfficeService {
	offices := newStubOfficeRepo()
	queries := query.NewOfficeQueryService(offices, nil, zerolog.Nop())
	commands := command.NewOfficeCommandService(offices, users, nil, zerolog.Nop())
	return NewOfficeService(queries, commands)
}

func TestOfficeService_CreateThenGetByName(t *testing.T) {
	users := newStubUserRepo()
	users.users["u-1"] = &domain.User{ID: "u-1", Name: "Owner", Email: "o@x.com", Password: "d", Rol: "admin"}
	svc := newOfficeService(users)

	created, err := svc.Create(context.Background(), ports.OfficeInput{
		Name: "HQ", Address: "1 Plaza", City: "Madrid", State: "MD", ZipCode: "28001", UserID: "u-1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	found, err := svc.GetByName(context.Background(), "HQ")
	if err != nil {
		t.Fatalf("GetByName returned error: %v", err)
	}
	if found.ID != created.ID || found.ZipCode != "28001" {
		t.Fatalf("unexpected office: %+v", found)
	}
}

func TestOfficeService_GetByID_NotFound(t *testing.T) {
	svc := newOfficeService(newStubUserRepo())

	if _, err := svc.GetByID(context.Background(), "missing"); err != domain.ErrOfficeNotFound {
		t.Fatalf("expected ErrOfficeNotFound, got %v", err)
	}
}
