package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

const (
	tableCategories = "categories"
	colType         = "type"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// GetByID obtiene una categoría por id; nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	query, args, err := dialect.From(tableCategories).
		Select(colID, colType).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get category: %w", err)
	}
	var c entity.Category
	if err := r.q.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Type); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías ordenadas por id.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	query, _, err := dialect.From(tableCategories).
		Select(colID, colType).
		Order(goqu.I(colID).Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := []*entity.Category{}
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Save inserta la categoría o actualiza su type si el id ya existe.
func (r *CategoryRepo) Save(ctx context.Context, c *entity.Category) error {
	query, args, err := dialect.Insert(tableCategories).
		Rows(goqu.Record{colID: c.ID, colType: c.Type}).
		OnConflict(goqu.DoUpdate(colID, goqu.Record{colType: goqu.L("EXCLUDED." + colType)})).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build save category: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}
