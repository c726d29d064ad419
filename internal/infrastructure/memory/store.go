// Package memory implementa los repositorios en memoria. Se usa con TRIVIA_STORE=memory
// y como respaldo de los tests HTTP.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/trivia-api/internal/application/usecase"
	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

var _ usecase.SeedTxRunner = (*Store)(nil)

type state struct {
	questions  map[int64]entity.Question
	categories map[int64]entity.Category
	nextID     int64
}

func (s *state) clone() *state {
	c := &state{
		questions:  make(map[int64]entity.Question, len(s.questions)),
		categories: make(map[int64]entity.Category, len(s.categories)),
		nextID:     s.nextID,
	}
	for k, v := range s.questions {
		c.questions[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	return c
}

// Store almacén en memoria seguro para uso concurrente. Los repositorios
// de preguntas y categorías comparten su estado.
type Store struct {
	mu   sync.RWMutex
	data *state

	txMu sync.Mutex // serializa RunSeed
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: &state{
		questions:  map[int64]entity.Question{},
		categories: map[int64]entity.Category{},
		nextID:     1,
	}}
}

// Questions repositorio de preguntas sobre este almacén.
func (s *Store) Questions() *QuestionRepo { return &QuestionRepo{s: s} }

// Categories repositorio de categorías sobre este almacén.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// RunSeed ejecuta fn sobre una copia del estado y la publica solo si fn no falla.
func (s *Store) RunSeed(ctx context.Context, fn func(
	categories repository.CategoryRepository,
	questions repository.QuestionRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	tx := &Store{data: s.data.clone()}
	s.mu.RUnlock()

	if err := fn(tx.Categories(), tx.Questions()); err != nil {
		return err
	}

	s.mu.Lock()
	s.data = tx.data
	s.mu.Unlock()
	return nil
}
