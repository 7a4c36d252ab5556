package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
)

type stubOfficeService struct {
	getAllFn    func(ctx context.Context) ([]domain.Office, error)
	getByIDFn   func(ctx context.Context, id string) (*domain.Office, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Office, error)
	createFn    func(ctx context.Context, input ports.OfficeInput) (*domain.Office, error)
	updateFn    func(ctx context.Context, id string, input ports.OfficeInput) (*domain.Office, error)
	deleteFn    func(ctx context.Context, id string) error
}

func (s *stubOfficeService) GetAll(ctx context.Context) ([]domain.Office, error) {
	return s.getAllFn(ctx)
}

func (s *stubOfficeService) GetByID(ctx context.Context, id string) (*domain.Office, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubOfficeService) GetByName(ctx context.Context, name string) (*domain.Office, error) {
	return s.getByNameFn(ctx, name)
}

func (s *stubOfficeService) Create(ctx context.Context, input ports.OfficeInput) (*domain.Office, error) {
	return s.createFn(ctx, input)
}

func (s *stubOfficeService) Update(ctx context.Context, id string, input ports.OfficeInput) (*domain.Office, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubOfficeService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

const officeBody = `{"name":"HQ","address":"1 Plaza","city":"Madrid","state":"MD","zipCode":"28001","userId":"u-1"}`

func TestOfficeHandler_Create(t *testing.T) {
	stub := &stubOfficeService{
		createFn: func(ctx context.Context, input ports.OfficeInput) (*domain.Office, error) {
			if input.Name != "HQ" || input.UserID != "u-1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Office{ID: "o-1", Name: input.Name, Address: input.Address,
				City: input.City, State: input.State, ZipCode: input.ZipCode, UserID: input.UserID}, nil
		},
	}
	h := NewOfficeHandler(stub)

	c, rec := newHandlerContext(t, http.MethodPost, "/office", officeBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	office, ok := resp["data"].(map[string]any)
	if !ok || office["zipCode"] != "28001" || office["userId"] != "u-1" {
		t.Fatalf("unexpected office payload: %+v", resp["data"])
	}
}

func TestOfficeHandler_Create_MissingFields(t *testing.T) {
	stub := &stubOfficeService{
		createFn: func(ctx context.Context, input ports.OfficeInput) (*domain.Office, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewOfficeHandler(stub)

	c, _ := newHandlerContext(t, http.MethodPost, "/office", `{"name":"HQ"}`)
	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestOfficeHandler_Create_UnknownOwnerPropagates(t *testing.T) {
	stub := &stubOfficeService{
		createFn: func(ctx context.Context, input ports.OfficeInput) (*domain.Office, error) {
			return nil, domain.ErrOwnerNotFound
		},
	}
	h := NewOfficeHandler(stub)

	c, _ := newHandlerContext(t, http.MethodPost, "/office", officeBody)
	if err := h.Create(c); err != domain.ErrOwnerNotFound {
		t.Fatalf("expected ErrOwnerNotFound to reach the error handler, got %v", err)
	}
}

func TestOfficeHandler_Create_DuplicateNamePropagates(t *testing.T) {
	stub := &stubOfficeService{
		createFn: func(ctx context.Context, input ports.OfficeInput) (*domain.Office, error) {
			return nil, domain.ErrOfficeExists
		},
	}
	h := NewOfficeHandler(stub)

	c, _ := newHandlerContext(t, http.MethodPost, "/office", officeBody)
	if err := h.Create(c); err != domain.ErrOfficeExists {
		t.Fatalf("expected ErrOfficeExists to reach the error handler, got %v", err)
	}
}

func TestOfficeHandler_GetAll(t *testing.T) {
	stub := &stubOfficeService{
		getAllFn: func(ctx context.Context) ([]domain.Office, error) {
			return []domain.Office{
				{ID: "o-1", Name: "HQ", UserID: "u-1"},
				{ID: "o-2", Name: "Branch", UserID: "u-1"},
			}, nil
		},
	}
	h := NewOfficeHandler(stub)

	c, rec := newHandlerContext(t, http.MethodGet, "/office", "")
	if err := h.GetAll(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, ok := resp["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("unexpected data: %+v", resp["data"])
	}
}

func TestOfficeHandler_GetByID_NotFoundPropagates(t *testing.T) {
	stub := &stubOfficeService{
		getByIDFn: func(ctx context.Context, id string) (*domain.Office, error) {
			return nil, domain.ErrOfficeNotFound
		},
	}
	h := NewOfficeHandler(stub)

	c, _ := newHandlerContext(t, http.MethodGet, "/office/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.GetByID(c); err != domain.ErrOfficeNotFound {
		t.Fatalf("expected ErrOfficeNotFound to reach the error handler, got %v", err)
	}
}

func TestOfficeHandler_Update_UsesPathID(t *testing.T) {
	stub := &stubOfficeService{
		updateFn: func(ctx context.Context, id string, input ports.OfficeInput) (*domain.Office, error) {
			if id != "o-1" {
				t.Fatalf("expected path id o-1, got %s", id)
			}
			return &domain.Office{ID: id, Name: input.Name, UserID: input.UserID}, nil
		},
	}
	h := NewOfficeHandler(stub)

	c, rec := newHandlerContext(t, http.MethodPut, "/office/o-1", officeBody)
	c.SetParamNames("id")
	c.SetParamValues("o-1")
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOfficeHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubOfficeService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	h := NewOfficeHandler(stub)

	c, rec := newHandlerContext(t, http.MethodDelete, "/office/o-1", "")
	c.SetParamNames("id")
	c.SetParamValues("o-1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if deleted != "o-1" {
		t.Fatalf("service not called with path id: %q", deleted)
	}
	if !strings.Contains(rec.Body.String(), "office deleted") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
