package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registra el dialecto
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/trivia-api/internal/domain"
	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

const (
	tableQuestions = "questions"
	colID          = "id"
	colQuestion    = "question"
	colAnswer      = "answer"
	colCategory    = "category"
	colDifficulty  = "difficulty"
)

var dialect = goqu.Dialect("postgres")

var _ repository.QuestionRepository = (*QuestionRepo)(nil)

// QuestionRepo implementación de QuestionRepository sobre PostgreSQL (usable con pool o tx).
type QuestionRepo struct {
	q Querier
}

// NewQuestionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuestionRepository(q Querier) *QuestionRepo {
	return &QuestionRepo{q: q}
}

// Create inserta la pregunta y asigna el id generado.
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	query, args, err := dialect.Insert(tableQuestions).
		Rows(goqu.Record{
			colQuestion:   question.Question,
			colAnswer:     question.Answer,
			colCategory:   question.Category,
			colDifficulty: question.Difficulty,
		}).
		Returning(colID).
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert question: %w", err)
	}
	if err := r.q.QueryRow(ctx, query, args...).Scan(&question.ID); err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("insert question: %w", domain.ErrUnknownCategory)
		case isCheckViolation(err):
			return fmt.Errorf("insert question: %w", domain.ErrInvalidInput)
		case isUniqueViolation(err):
			return fmt.Errorf("insert question: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// GetByID obtiene una pregunta por id; nil si no existe.
func (r *QuestionRepo) GetByID(ctx context.Context, id int64) (*entity.Question, error) {
	query, args, err := selectQuestions().Where(goqu.C(colID).Eq(id)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get question: %w", err)
	}
	var q entity.Question
	err = r.q.QueryRow(ctx, query, args...).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &q, nil
}

// List devuelve las preguntas que cumplen el filtro ordenadas por id.
func (r *QuestionRepo) List(ctx context.Context, f repository.QuestionFilter) ([]*entity.Question, error) {
	query, args, err := buildListQuery(f)
	if err != nil {
		return nil, fmt.Errorf("build list questions: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	list := []*entity.Question{}
	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Count total de preguntas.
func (r *QuestionRepo) Count(ctx context.Context) (int, error) {
	query, _, err := dialect.From(tableQuestions).Select(goqu.COUNT(goqu.Star())).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count questions: %w", err)
	}
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// Delete elimina por id. domain.ErrNotFound si no existía.
func (r *QuestionRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := dialect.Delete(tableQuestions).Where(goqu.C(colID).Eq(id)).Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete question: %w", err)
	}
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func selectQuestions() *goqu.SelectDataset {
	return dialect.From(tableQuestions).
		Select(colID, colQuestion, colAnswer, colCategory, colDifficulty).
		Prepared(true)
}

// buildListQuery traduce QuestionFilter al mismo criterio que trivia.Apply aplica en memoria.
func buildListQuery(f repository.QuestionFilter) (string, []interface{}, error) {
	ds := selectQuestions()
	if f.SearchTerm != "" {
		ds = ds.Where(goqu.C(colQuestion).Like(containsPattern(f.SearchTerm)))
	}
	if f.CategoryID != 0 {
		ds = ds.Where(goqu.C(colCategory).Eq(f.CategoryID))
	}
	if len(f.ExcludeIDs) > 0 {
		ds = ds.Where(goqu.C(colID).NotIn(f.ExcludeIDs))
	}
	return ds.Order(goqu.I(colID).Asc()).ToSQL()
}
