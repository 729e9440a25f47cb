package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

type RecipeHandler struct {
	recipeService ports.RecipeService
}

func NewRecipeHandler(recipeService ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

type createRecipeRequest struct {
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}

// patchRecipeRequest distinguishes absent fields from zero values so a
// partial update can leave untouched fields alone.
type patchRecipeRequest struct {
	Titulo      *string `json:"titulo"`
	Descripcion *string `json:"descripcion"`
	Comunidad   *bool   `json:"comunidad"`
}

// List handles GET /recipes. All recipes, public endpoint.
func (h *RecipeHandler) List(c echo.Context) error {
	recipes, err := h.recipeService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// ListCommunity handles GET /recipes/public. Only comunidad recipes.
func (h *RecipeHandler) ListCommunity(c echo.Context) error {
	recipes, err := h.recipeService.ListCommunity(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recipes)
}

// Create handles POST /upload/recipes. Authorship comes from the caller's
// verified claims; the payload carries no autor field.
//
// @Summary      Upload a recipe
// @Tags         recipes
// @Security     BearerAuth
// @Router       /upload/recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req createRecipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Todos los campos son obligatorios"})
	}

	recipe, err := h.recipeService.Create(c.Request().Context(), caller, ports.CreateRecipeInput{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Todos los campos son obligatorios"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Receta guardada con exito",
		"recipe":  recipe,
	})
}

// Patch handles PATCH /recipes/:id, a partial update of titulo, descripcion
// and the comunidad visibility flag. Owner-or-admin.
//
// @Summary      Update a recipe
// @Tags         recipes
// @Security     BearerAuth
// @Router       /recipes/{id} [patch]
func (h *RecipeHandler) Patch(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req patchRecipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Datos inválidos"})
	}

	err = h.recipeService.Update(c.Request().Context(), caller, c.Param("id"), ports.RecipePatch{
		Titulo:      req.Titulo,
		Descripcion: req.Descripcion,
		Comunidad:   req.Comunidad,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Receta no encontrada"})
		case errors.Is(err, domain.ErrNoChanges):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "No hay cambios para aplicar"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "No tienes permisos para esta acción"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Receta actualizada con éxito"})
}

// Delete handles DELETE /recipes/:id. Admin only, re-verified against the
// store.
//
// @Summary      Delete a recipe
// @Tags         recipes
// @Security     BearerAuth
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.recipeService.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrRecipeNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Receta no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, map[string]string{"error": "No tienes permisos para esta acción"})
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Receta eliminada con éxito"})
}
