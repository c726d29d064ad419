package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/trivia-api/internal/domain"
	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

func seeded(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Categories().Save(ctx, &entity.Category{ID: 1, Type: "Science"}))
	require.NoError(t, s.Categories().Save(ctx, &entity.Category{ID: 3, Type: "Geography"}))
	for _, q := range []entity.Question{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
	} {
		q := q
		require.NoError(t, s.Questions().Create(ctx, &q))
	}
	return s
}

func TestQuestionRepo_CreateAsignaIDsCrecientes(t *testing.T) {
	s := seeded(t)
	q := &entity.Question{Question: "Q", Answer: "A", Category: 3, Difficulty: 1}
	require.NoError(t, s.Questions().Create(context.Background(), q))
	assert.Equal(t, int64(4), q.ID)
}

func TestQuestionRepo_CreateCategoriaInexistente(t *testing.T) {
	s := seeded(t)
	err := s.Questions().Create(context.Background(), &entity.Question{Question: "Q", Answer: "A", Category: 99, Difficulty: 1})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestQuestionRepo_ListFiltra(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	all, err := s.Questions().List(ctx, repository.QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(3), all[2].ID)

	science, err := s.Questions().List(ctx, repository.QuestionFilter{CategoryID: 1, ExcludeIDs: []int64{1}})
	require.NoError(t, err)
	require.Len(t, science, 1)
	assert.Equal(t, int64(3), science[0].ID)

	lakes, err := s.Questions().List(ctx, repository.QuestionFilter{SearchTerm: "lake"})
	require.NoError(t, err)
	require.Len(t, lakes, 1)
}

func TestQuestionRepo_Delete(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	require.NoError(t, s.Questions().Delete(ctx, 2))
	q, err := s.Questions().GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, q)

	assert.ErrorIs(t, s.Questions().Delete(ctx, 2), domain.ErrNotFound)
}

func TestCategoryRepo_ListOrdenado(t *testing.T) {
	s := seeded(t)
	list, err := s.Categories().List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Science", list[0].Type)
	assert.Equal(t, "Geography", list[1].Type)
}

func TestRunSeed_RollbackSiFalla(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.RunSeed(ctx, func(categories repository.CategoryRepository, questions repository.QuestionRepository) error {
		require.NoError(t, categories.Save(ctx, &entity.Category{ID: 6, Type: "Sports"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	c, err := s.Categories().GetByID(ctx, 6)
	require.NoError(t, err)
	assert.Nil(t, c, "la categoría no debe publicarse tras un error")
}

func TestRunSeed_Commit(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	err := s.RunSeed(ctx, func(categories repository.CategoryRepository, questions repository.QuestionRepository) error {
		return categories.Save(ctx, &entity.Category{ID: 6, Type: "Sports"})
	})
	require.NoError(t, err)

	c, err := s.Categories().GetByID(ctx, 6)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Sports", c.Type)
}
