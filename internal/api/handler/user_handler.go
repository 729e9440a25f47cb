package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateProfileRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Foto        string `json:"foto"`
}

// userResponse is the profile shape the original API exposed: id, nombre,
// email, descripcion, foto. Never the password hash.
type userResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
	Descripcion string `json:"descripcion"`
	Foto        string `json:"foto"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Nombre:      u.Nombre,
		Email:       u.Email,
		Descripcion: u.Descripcion,
		Foto:        u.Foto,
	}
}

// Get handles GET /usuarios/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Usuario no encontrado"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List handles GET /usuarios.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// UpdateProfile handles PUT /usuarios/:id. Owner-or-admin; email and
// password cannot be changed here.
//
// @Summary      Update profile fields
// @Tags         users
// @Security     BearerAuth
// @Router       /usuarios/{id} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Datos inválidos"})
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), caller, c.Param("id"), ports.ProfileUpdate{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		Foto:        req.Foto,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Usuario no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "No tienes permisos para esta acción"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Perfil actualizado con éxito",
		"user":    toUserResponse(user),
	})
}

// Delete handles DELETE /usuarios/:id. Admin only; the administrator account
// itself is never deletable.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Router       /usuarios/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Usuario no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "No tienes permisos para esta acción"})
		case errors.Is(err, domain.ErrAdminProtected):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "La cuenta de administrador no puede ser eliminada"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Usuario eliminado con éxito"})
}
