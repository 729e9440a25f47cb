package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

// ctxCaller extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: a non-empty user id and role
// prove the middleware ran. Handlers behind Auth never see a guest caller.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	id, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	if id == "" || role == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	nombre, _ := c.Get("nombre").(string)

	return ports.Caller{
		ID:     id,
		Email:  email,
		Nombre: nombre,
		Role:   domain.Role(role),
	}, nil
}
