package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trivia-api/internal/application/dto"
	"github.com/jhoicas/trivia-api/internal/application/usecase"
)

// QuizHandler maneja el juego.
type QuizHandler struct {
	uc *usecase.QuizUseCase
}

// NewQuizHandler construye el handler.
func NewQuizHandler(uc *usecase.QuizUseCase) *QuizHandler {
	return &QuizHandler{uc: uc}
}

// Next godoc
// @Summary      Siguiente pregunta del quiz
// @Description  quiz_category.id = 0 juega con todas las categorías. question es null cuando no quedan preguntas.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuizRequest  true  "Estado del juego"
// @Success      200   {object}  dto.QuizResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) Next(c *fiber.Ctx) error {
	var in dto.QuizRequest
	if err := parseJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Next(c.UserContext(), in)
	if err != nil {
		return unprocessable(err)
	}
	out.Success = true
	return c.JSON(out)
}
