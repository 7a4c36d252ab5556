package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiempovital/admin-api/internal/core/ports"
)

// UserHandler exposes CRUD over users. Every representation it returns is
// sanitized structurally: domain.User never serializes its password digest.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Rol      string `json:"rol" validate:"required"`
	Image    string `json:"image"`
}

type updateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
	Rol      string `json:"rol" validate:"required"`
	Image    string `json:"image"`
}

// GetAll handles GET /user.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /user [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope(users))
}

// GetByID handles GET /user/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /user/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	user, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope(user))
}

// Create handles POST /user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /user [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Rol:      req.Rol,
		Image:    req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataEnvelope(user))
}

// Update handles PUT /user/:id. The id always comes from the path; any id
// in the body is ignored.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "User details"
// @Success      200   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Router       /user/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Rol:      req.Rol,
		Image:    req.Image,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataEnvelope(user))
}

// Delete handles DELETE /user/:id. Deleting a user also removes the
// offices it owns.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageEnvelope("user deleted"))
}
