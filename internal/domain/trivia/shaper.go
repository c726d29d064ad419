// Package trivia contiene la lógica de selección de preguntas: paginación,
// filtros y elección aleatoria. Funciones puras, sin I/O ni estado entre requests.
package trivia

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

// DefaultPageSize cantidad de preguntas por página.
const DefaultPageSize = 10

// AllCategories id centinela del quiz: todas las categorías, sin filtro.
const AllCategories int64 = 0

// ParsePage interpreta el query param page (1-based). Ausente, no numérico o < 1 => 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate devuelve items[(page-1)*pageSize : page*pageSize] recortado al largo disponible.
// Una página fuera de rango devuelve un slice vacío (no nil).
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// FilterBySubstring conserva las preguntas cuyo texto contiene term. Term vacío => todas.
func FilterBySubstring(items []*entity.Question, term string) []*entity.Question {
	if term == "" {
		return items
	}
	return filter(items, func(q *entity.Question) bool {
		return strings.Contains(q.Question, term)
	})
}

// FilterByCategory conserva las preguntas de la categoría indicada.
func FilterByCategory(items []*entity.Question, categoryID int64) []*entity.Question {
	return filter(items, func(q *entity.Question) bool {
		return q.Category == categoryID
	})
}

// ExcludeIDs descarta las preguntas cuyo id está en ids.
func ExcludeIDs(items []*entity.Question, ids []int64) []*entity.Question {
	if len(ids) == 0 {
		return items
	}
	skip := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}
	return filter(items, func(q *entity.Question) bool {
		_, found := skip[q.ID]
		return !found
	})
}

// Apply aplica un QuestionFilter completo en memoria. Es la contraparte del WHERE
// que arma el repositorio PostgreSQL.
func Apply(items []*entity.Question, f repository.QuestionFilter) []*entity.Question {
	out := FilterBySubstring(items, f.SearchTerm)
	if f.CategoryID != AllCategories {
		out = FilterByCategory(out, f.CategoryID)
	}
	return ExcludeIDs(out, f.ExcludeIDs)
}

// QuizFilter construye el pool del quiz. Con la categoría centinela el pool son todas
// las preguntas y previous no se aplica; en otro caso categoría exacta excluyendo previous.
func QuizFilter(categoryID int64, previous []int64) repository.QuestionFilter {
	if categoryID == AllCategories {
		return repository.QuestionFilter{}
	}
	return repository.QuestionFilter{CategoryID: categoryID, ExcludeIDs: previous}
}

// PickRandom elige un elemento uniformemente. ok=false si pool está vacío.
func PickRandom[T any](rng *rand.Rand, pool []T) (item T, ok bool) {
	if len(pool) == 0 {
		return item, false
	}
	return pool[rng.IntN(len(pool))], true
}

func filter(items []*entity.Question, keep func(*entity.Question) bool) []*entity.Question {
	out := make([]*entity.Question, 0, len(items))
	for _, q := range items {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
