package usecase

import (
	"context"

	"github.com/jhoicas/trivia-api/internal/application/dto"
	"github.com/jhoicas/trivia-api/internal/domain"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de lectura para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías ordenadas por id. domain.ErrNotFound si no hay ninguna.
func (uc *CategoryUseCase) List(ctx context.Context) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	return &dto.CategoryListResponse{Categories: toCategoryResponses(list)}, nil
}

// GetByID obtiene una categoría por id; nil si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	out := toCategoryResponse(c)
	return &out, nil
}
