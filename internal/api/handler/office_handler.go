package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiempovital/admin-api/internal/core/ports"
)

type OfficeHandler struct {
	service ports.OfficeService
}

func NewOfficeHandler(service ports.OfficeService) *OfficeHandler {
	return &OfficeHandler{service: service}
}

type officeRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Image   string `json:"image"`
	UserID  string `json:"userId" validate:"required"`
}

func (r officeRequest) toInput() ports.OfficeInput {
	return ports.OfficeInput{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
		Image:   r.Image,
		UserID:  r.UserID,
	}
}

// GetAll handles GET /office.
//
// @Summary      List all offices
// @Tags         offices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /office [get]
func (h *OfficeHandler) GetAll(c echo.Context) error {
	offices, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope(offices))
}

// GetByID handles GET /office/:id.
//
// @Summary      Get an office by id
// @Tags         offices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Office id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /office/{id} [get]
func (h *OfficeHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	office, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope(office))
}

// Create handles POST /office. userId must reference an existing user.
//
// @Summary      Create an office
// @Tags         offices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      officeRequest  true  "Office details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /office [post]
func (h *OfficeHandler) Create(c echo.Context) error {
	var req officeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	office, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataEnvelope(office))
}

// Update handles PUT /office/:id. The id always comes from the path; any
// id in the body is ignored.
//
// @Summary      Update an office
// @Tags         offices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Office id"
// @Param        body  body      officeRequest  true  "Office details"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /office/{id} [put]
func (h *OfficeHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	var req officeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	office, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope(office))
}

// Delete handles DELETE /office/:id.
//
// @Summary      Delete an office
// @Tags         offices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Office id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /office/{id} [delete]
func (h *OfficeHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageEnvelope("office deleted"))
}
