package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tiempovital/admin-api/internal/core/domain"
	"github.com/tiempovital/admin-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Rol      string `json:"rol" validate:"required"`
	Image    string `json:"image"`
}

type authResponse struct {
	Success bool         `json:"success"`
	Token   string       `json:"token,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Both failure modes are 401 to the client; the message still
		// distinguishes an unknown account from a bad password.
		switch err {
		case domain.ErrUserNotFound:
			return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
		case domain.ErrInvalidCredentials:
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Success: true, Token: token, User: user})
}

// Register creates a new account and logs it straight in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), ports.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Rol:      req.Rol,
		Image:    req.Image,
	})
	if err != nil {
		if err == domain.ErrEmailExists {
			return echo.NewHTTPError(http.StatusConflict, "email already registered")
		}
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Success: true, Token: token, User: user})
}
