package dto

import (
	"fmt"

	"github.com/jhoicas/trivia-api/internal/domain"
)

// QuizCategory categoría elegida en el juego; id 0 = todas.
type QuizCategory struct {
	ID   *FlexInt `json:"id"`
	Type string   `json:"type"`
}

// QuizRequest entrada de POST /quizzes.
type QuizRequest struct {
	PreviousQuestions []FlexInt     `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// Validate exige quiz_category como objeto con id.
func (r QuizRequest) Validate() error {
	if r.QuizCategory == nil || r.QuizCategory.ID == nil {
		return fmt.Errorf("%w: quiz_category.id es requerido", domain.ErrInvalidInput)
	}
	if r.QuizCategory.ID.Int64() < 0 {
		return fmt.Errorf("%w: quiz_category.id negativo", domain.ErrInvalidInput)
	}
	return nil
}

// CategoryID id de categoría solicitado.
func (r QuizRequest) CategoryID() int64 {
	return r.QuizCategory.ID.Int64()
}

// PreviousIDs ids ya servidos al cliente.
func (r QuizRequest) PreviousIDs() []int64 {
	out := make([]int64, 0, len(r.PreviousQuestions))
	for _, id := range r.PreviousQuestions {
		out = append(out, id.Int64())
	}
	return out
}

// QuizResponse respuesta de POST /quizzes. Question es null si no quedan preguntas.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}
