package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    domain.PublicUser `json:"user"`
}

// Register creates a new account. It never issues a token; the client is
// expected to log in afterwards.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Todos los campos son obligatorios"})
	}

	err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "El email ya está registrado"})
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Todos los campos son obligatorios"})
		case errors.Is(err, domain.ErrPasswordTooShort):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "La contraseña debe tener al menos 6 caracteres"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Usuario registrado con éxito"})
}

// Login verifies credentials and returns a session token with the public
// identity fields. Unknown email and wrong password both answer 400, as the
// original API did.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Todos los campos son obligatorios"})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Contraseña incorrecta"})
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Todos los campos son obligatorios"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Demasiados intentos, inténtalo más tarde"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login exitoso",
		Token:   result.Token,
		User:    result.User,
	})
}
