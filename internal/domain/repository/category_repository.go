package repository

import (
	"context"

	"github.com/jhoicas/trivia-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	// Save inserta o actualiza por id. Solo lo usa la carga del banco de preguntas.
	Save(ctx context.Context, category *entity.Category) error
}
