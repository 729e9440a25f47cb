package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mikens/recetas-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
//
// Handlers translate most domain errors themselves because the mapping is
// context-dependent (an unknown email is 400 at login but 404 on a profile
// fetch); this handler is the safety net for everything they pass through.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Token inválido o expirado"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "No tienes permisos para esta acción"
	case errors.Is(err, domain.ErrAdminProtected):
		return http.StatusForbidden, "La cuenta de administrador no puede ser eliminada"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Usuario no encontrado"
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, "Receta no encontrada"
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, "Comentario no encontrado"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "El email ya está registrado"
	case errors.Is(err, domain.ErrNoChanges):
		return http.StatusBadRequest, "No hay cambios para aplicar"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Demasiados intentos, inténtalo más tarde"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Error interno del servidor"
}
