package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

func TestBuildListQuery_SinFiltro(t *testing.T) {
	query, args, err := buildListQuery(repository.QuestionFilter{})
	require.NoError(t, err)

	assert.Equal(t, `SELECT "id", "question", "answer", "category", "difficulty" FROM "questions" ORDER BY "id" ASC`, query)
	assert.Empty(t, args)
}

func TestBuildListQuery_FiltrosCompletos(t *testing.T) {
	query, args, err := buildListQuery(repository.QuestionFilter{
		SearchTerm: "African",
		CategoryID: 3,
		ExcludeIDs: []int64{10, 13},
	})
	require.NoError(t, err)

	assert.Contains(t, query, `"question" LIKE $1`)
	assert.Contains(t, query, `"category" = $2`)
	assert.Contains(t, query, `"id" NOT IN ($3, $4)`)
	assert.Contains(t, query, `ORDER BY "id" ASC`)
	assert.Equal(t, []interface{}{"%African%", int64(3), int64(10), int64(13)}, args)
}

func TestBuildListQuery_SoloCategoria(t *testing.T) {
	query, args, err := buildListQuery(repository.QuestionFilter{CategoryID: 5})
	require.NoError(t, err)

	assert.Contains(t, query, `WHERE ("category" = $1)`)
	assert.NotContains(t, query, "LIKE")
	assert.NotContains(t, query, "NOT IN")
	assert.Equal(t, []interface{}{int64(5)}, args)
}

func TestContainsPattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%snake\_case%`, containsPattern("snake_case"))
	assert.Equal(t, `%C:\\dir%`, containsPattern(`C:\dir`))
}

func TestPgErrorCodes(t *testing.T) {
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(fk))

	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isCheckViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isForeignKeyViolation(errors.New("23503")))
}
