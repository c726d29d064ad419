package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trivia-api/internal/application/dto"
	"github.com/jhoicas/trivia-api/internal/application/usecase"
	"github.com/jhoicas/trivia-api/internal/domain"
	"github.com/jhoicas/trivia-api/internal/domain/trivia"
)

// QuestionHandler maneja las peticiones HTTP de preguntas.
type QuestionHandler struct {
	uc *usecase.QuestionUseCase
}

// NewQuestionHandler construye el handler.
func NewQuestionHandler(uc *usecase.QuestionUseCase) *QuestionHandler {
	return &QuestionHandler{uc: uc}
}

func pageParam(c *fiber.Ctx) int {
	return trivia.ParsePage(c.Query("page"))
}

// List godoc
// @Summary      Listar preguntas paginadas (10 por página)
// @Tags         questions
// @Produce      json
// @Param        page  query  int  false  "Página"  default(1)
// @Success      200   {object}  dto.QuestionListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListPage(c.UserContext(), pageParam(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(err)
		}
		return internal(err)
	}
	out.Success = true
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pregunta
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuestionRequest  true  "Pregunta"
// @Success      200   {object}  dto.QuestionCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuestionRequest
	if err := parseJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in, pageParam(c))
	if err != nil {
		return unprocessable(err)
	}
	out.Success = true
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pregunta
// @Tags         questions
// @Produce      json
// @Param        id  path  int  true  "ID de la pregunta"
// @Success      200  {object}  dto.QuestionDeletedResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return unprocessable(err)
	}
	out, err := h.uc.Delete(c.UserContext(), int64(id), pageParam(c))
	if err != nil {
		return unprocessable(err)
	}
	out.Success = true
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar preguntas por substring
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchQuestionsRequest  true  "Término"
// @Success      200   {object}  dto.QuestionSearchResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchQuestionsRequest
	if err := parseJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Search(c.UserContext(), in.Term(), pageParam(c))
	if err != nil {
		return unprocessable(err)
	}
	out.Success = true
	return c.JSON(out)
}

// ListByCategory godoc
// @Summary      Preguntas de una categoría
// @Tags         categories
// @Produce      json
// @Param        id    path   int  true   "ID de la categoría"
// @Param        page  query  int  false  "Página"  default(1)
// @Success      200   {object}  dto.CategoryQuestionsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *QuestionHandler) ListByCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return notFound(err)
	}
	out, err := h.uc.ListByCategory(c.UserContext(), int64(id), pageParam(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(err)
		}
		return internal(err)
	}
	out.Success = true
	return c.JSON(out)
}
