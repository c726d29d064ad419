package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/trivia-api/internal/application/dto"
	"github.com/jhoicas/trivia-api/internal/domain"
	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
	"github.com/jhoicas/trivia-api/internal/domain/trivia"
)

// QuestionUseCase casos de uso para listar, buscar, crear y eliminar preguntas.
type QuestionUseCase struct {
	questions  repository.QuestionRepository
	categories repository.CategoryRepository
	pageSize   int
}

// NewQuestionUseCase construye el caso de uso. pageSize <= 0 usa trivia.DefaultPageSize.
func NewQuestionUseCase(questions repository.QuestionRepository, categories repository.CategoryRepository, pageSize int) *QuestionUseCase {
	if pageSize <= 0 {
		pageSize = trivia.DefaultPageSize
	}
	return &QuestionUseCase{questions: questions, categories: categories, pageSize: pageSize}
}

// ListPage devuelve la página de todas las preguntas junto con las categorías.
// domain.ErrNotFound si la página está vacía.
func (uc *QuestionUseCase) ListPage(ctx context.Context, page int) (*dto.QuestionListResponse, error) {
	current, total, err := uc.pageWithTotal(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, domain.ErrNotFound
	}
	cats, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionListResponse{
		Questions:      toQuestionResponses(current),
		TotalQuestions: total,
		Categories:     toCategoryResponses(cats),
	}, nil
}

// Create inserta una pregunta y devuelve la página solicitada tras la inserción.
func (uc *QuestionUseCase) Create(ctx context.Context, in dto.CreateQuestionRequest, page int) (*dto.QuestionCreatedResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	q := &entity.Question{
		Question:   strings.TrimSpace(in.Question),
		Answer:     strings.TrimSpace(in.Answer),
		Category:   in.Category.Int64(),
		Difficulty: int(in.Difficulty.Int64()),
	}
	if err := uc.questions.Create(ctx, q); err != nil {
		return nil, err
	}
	current, total, err := uc.pageWithTotal(ctx, page)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionCreatedResponse{
		Created:        q.ID,
		Questions:      toQuestionResponses(current),
		TotalQuestions: total,
	}, nil
}

// Delete elimina la pregunta id. domain.ErrNotFound si no existe.
func (uc *QuestionUseCase) Delete(ctx context.Context, id int64, page int) (*dto.QuestionDeletedResponse, error) {
	if err := uc.questions.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete question %d: %w", id, err)
	}
	current, total, err := uc.pageWithTotal(ctx, page)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionDeletedResponse{
		Deleted:        id,
		Questions:      toQuestionResponses(current),
		TotalQuestions: total,
	}, nil
}

// Search devuelve la página de preguntas cuyo texto contiene term.
// total_questions es el largo de la página devuelta; una búsqueda sin resultados no es error.
func (uc *QuestionUseCase) Search(ctx context.Context, term string, page int) (*dto.QuestionSearchResponse, error) {
	list, err := uc.questions.List(ctx, repository.QuestionFilter{SearchTerm: term})
	if err != nil {
		return nil, err
	}
	current := trivia.Paginate(list, page, uc.pageSize)
	return &dto.QuestionSearchResponse{
		Questions:      toQuestionResponses(current),
		TotalQuestions: len(current),
	}, nil
}

// ListByCategory devuelve la página de preguntas de una categoría.
// domain.ErrNotFound si la categoría no existe o la página está vacía.
func (uc *QuestionUseCase) ListByCategory(ctx context.Context, categoryID int64, page int) (*dto.CategoryQuestionsResponse, error) {
	cat, err := uc.categories.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.questions.List(ctx, repository.QuestionFilter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	current := trivia.Paginate(list, page, uc.pageSize)
	if len(current) == 0 {
		return nil, domain.ErrNotFound
	}
	return &dto.CategoryQuestionsResponse{
		Questions:       toQuestionResponses(current),
		TotalQuestions:  len(current),
		CurrentCategory: toCategoryResponse(cat),
	}, nil
}

func (uc *QuestionUseCase) pageWithTotal(ctx context.Context, page int) ([]*entity.Question, int, error) {
	list, err := uc.questions.List(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.questions.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return trivia.Paginate(list, page, uc.pageSize), total, nil
}
