package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/trivia-api/internal/domain"
	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	s *Store
}

// GetByID devuelve la categoría o nil.
func (r *CategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.data.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List devuelve todas las categorías ordenadas por id.
func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	list := make([]*entity.Category, 0, len(r.s.data.categories))
	for _, c := range r.s.data.categories {
		c := c
		list = append(list, &c)
	}
	r.s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Save inserta o reemplaza por id.
func (r *CategoryRepo) Save(_ context.Context, c *entity.Category) error {
	if c.ID <= 0 {
		return fmt.Errorf("save category: %w: id %d", domain.ErrInvalidInput, c.ID)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.categories[c.ID] = *c
	return nil
}
