package dto

import (
	"fmt"
	"strings"

	"github.com/jhoicas/trivia-api/internal/domain"
)

// Rango aceptado para la dificultad.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// CreateQuestionRequest entrada de POST /questions.
type CreateQuestionRequest struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Category   *FlexInt `json:"category"`
	Difficulty *FlexInt `json:"difficulty"`
}

// Validate comprueba campos obligatorios y rangos.
func (r CreateQuestionRequest) Validate() error {
	if strings.TrimSpace(r.Question) == "" || strings.TrimSpace(r.Answer) == "" {
		return fmt.Errorf("%w: question y answer son requeridos", domain.ErrInvalidInput)
	}
	if r.Category == nil || r.Category.Int64() <= 0 {
		return fmt.Errorf("%w: category es requerido", domain.ErrInvalidInput)
	}
	if r.Difficulty == nil {
		return fmt.Errorf("%w: difficulty es requerido", domain.ErrInvalidInput)
	}
	if d := r.Difficulty.Int64(); d < MinDifficulty || d > MaxDifficulty {
		return fmt.Errorf("%w: difficulty fuera de rango (%d)", domain.ErrInvalidInput, d)
	}
	return nil
}

// SearchQuestionsRequest entrada de POST /questions/search.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// Term devuelve el término o "" si no vino.
func (r SearchQuestionsRequest) Term() string {
	if r.SearchTerm == nil {
		return ""
	}
	return *r.SearchTerm
}

// QuestionResponse salida de una pregunta.
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionListResponse respuesta de GET /questions.
type QuestionListResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
	Categories     []CategoryResponse `json:"categories"`
}

// QuestionSearchResponse respuesta de POST /questions/search (sin categories).
type QuestionSearchResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// CategoryQuestionsResponse respuesta de GET /categories/{id}/questions.
type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory CategoryResponse   `json:"current_category"`
}

// QuestionCreatedResponse respuesta de POST /questions.
type QuestionCreatedResponse struct {
	Success        bool               `json:"success"`
	Created        int64              `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// QuestionDeletedResponse respuesta de DELETE /questions/{id}.
type QuestionDeletedResponse struct {
	Success        bool               `json:"success"`
	Deleted        int64              `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}
