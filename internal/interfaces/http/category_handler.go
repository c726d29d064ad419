package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trivia-api/internal/application/usecase"
	"github.com/jhoicas/trivia-api/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(err)
		}
		return internal(err)
	}
	out.Success = true
	return c.JSON(out)
}
