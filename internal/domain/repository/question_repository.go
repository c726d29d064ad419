package repository

import (
	"context"

	"github.com/jhoicas/trivia-api/internal/domain/entity"
)

// QuestionFilter restringe el conjunto de preguntas devuelto por List.
// Los campos en cero no filtran.
type QuestionFilter struct {
	SearchTerm string  // substring de Question.Question (sensible a mayúsculas)
	CategoryID int64   // 0 = todas
	ExcludeIDs []int64 // ids a descartar
}

// QuestionRepository define el puerto de persistencia para Question (DIP).
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id int64) (*entity.Question, error)
	// List devuelve las preguntas que cumplen el filtro ordenadas por id.
	List(ctx context.Context, filter QuestionFilter) ([]*entity.Question, error)
	Count(ctx context.Context) (int, error)
	// Delete elimina por id; domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id int64) error
}
