package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

type createCommentRequest struct {
	RecipeID string `json:"recipe_id" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// Create handles POST /comments. Requires a valid session; attribution comes
// from token claims, never from the payload.
//
// @Summary      Post a comment
// @Tags         comments
// @Security     BearerAuth
// @Router       /comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Todos los campos son obligatorios"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Todos los campos son obligatorios"})
	}

	comment, err := h.commentService.Create(c.Request().Context(), caller, req.RecipeID, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Todos los campos son obligatorios"})
		case errors.Is(err, domain.ErrRecipeNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Receta no encontrada"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Comentario publicado con éxito",
		"comment": comment,
	})
}

// ListByRecipe handles GET /recipes/:id/comments. Public.
func (h *CommentHandler) ListByRecipe(c echo.Context) error {
	comments, err := h.commentService.ListByRecipe(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// Delete handles DELETE /comments/:id. Author-or-admin.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.commentService.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Comentario no encontrado"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "No tienes permisos para esta acción"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Comentario eliminado con éxito"})
}
