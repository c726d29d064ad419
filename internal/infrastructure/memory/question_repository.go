package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/trivia-api/internal/domain"
	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
	"github.com/jhoicas/trivia-api/internal/domain/trivia"
)

var _ repository.QuestionRepository = (*QuestionRepo)(nil)

// QuestionRepo implementación en memoria de QuestionRepository.
type QuestionRepo struct {
	s *Store
}

// Create asigna id y persiste la pregunta. La categoría debe existir (equivalente a la FK).
func (r *QuestionRepo) Create(_ context.Context, q *entity.Question) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.categories[q.Category]; !ok {
		return fmt.Errorf("insert question: %w", domain.ErrUnknownCategory)
	}
	q.ID = r.s.data.nextID
	r.s.data.nextID++
	r.s.data.questions[q.ID] = *q
	return nil
}

// GetByID devuelve una copia de la pregunta o nil.
func (r *QuestionRepo) GetByID(_ context.Context, id int64) (*entity.Question, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	q, ok := r.s.data.questions[id]
	if !ok {
		return nil, nil
	}
	return &q, nil
}

// List aplica el filtro con trivia.Apply sobre las preguntas ordenadas por id.
func (r *QuestionRepo) List(_ context.Context, f repository.QuestionFilter) ([]*entity.Question, error) {
	r.s.mu.RLock()
	all := make([]*entity.Question, 0, len(r.s.data.questions))
	for _, q := range r.s.data.questions {
		q := q
		all = append(all, &q)
	}
	r.s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return trivia.Apply(all, f), nil
}

// Count total de preguntas.
func (r *QuestionRepo) Count(_ context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.data.questions), nil
}

// Delete elimina por id. domain.ErrNotFound si no existe.
func (r *QuestionRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.data.questions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.data.questions, id)
	return nil
}
