package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/trivia-api/internal/domain"
)

func TestFlexInt_AceptaNumeroYStringNumerico(t *testing.T) {
	var in struct {
		A FlexInt  `json:"a"`
		B FlexInt  `json:"b"`
		C *FlexInt `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 3, "b": " 5 ", "c": null}`), &in))
	assert.Equal(t, int64(3), in.A.Int64())
	assert.Equal(t, int64(5), in.B.Int64())
	assert.Nil(t, in.C)
}

func TestFlexInt_RechazaFormasInvalidas(t *testing.T) {
	for _, raw := range []string{`[]`, `{}`, `true`, `"tres"`, `3.5`} {
		var f FlexInt
		assert.Error(t, json.Unmarshal([]byte(raw), &f), "valor %s", raw)
	}
}

func TestCreateQuestionRequest_Validate(t *testing.T) {
	cat, diff := FlexInt(3), FlexInt(3)
	ok := CreateQuestionRequest{Question: "Q?", Answer: "A", Category: &cat, Difficulty: &diff}
	assert.NoError(t, ok.Validate())

	sinTexto := ok
	sinTexto.Question = "  "
	assert.ErrorIs(t, sinTexto.Validate(), domain.ErrInvalidInput)

	sinCategoria := ok
	sinCategoria.Category = nil
	assert.ErrorIs(t, sinCategoria.Validate(), domain.ErrInvalidInput)

	muyDificil := FlexInt(9)
	fueraDeRango := ok
	fueraDeRango.Difficulty = &muyDificil
	assert.ErrorIs(t, fueraDeRango.Validate(), domain.ErrInvalidInput)
}

func TestCreateQuestionRequest_CategoriaListaEsErrorDeForma(t *testing.T) {
	var in CreateQuestionRequest
	err := json.Unmarshal([]byte(`{"question":"Q","answer":"A","difficulty":"3","category":[]}`), &in)
	assert.Error(t, err)
}

func TestQuizRequest(t *testing.T) {
	var in QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"previous_questions":[1,"2"],"quiz_category":{"type":"Entertainment","id":"5"}}`), &in))
	require.NoError(t, in.Validate())
	assert.Equal(t, int64(5), in.CategoryID())
	assert.Equal(t, []int64{1, 2}, in.PreviousIDs())

	var scalar QuizRequest
	assert.Error(t, json.Unmarshal([]byte(`{"previous_questions":[],"quiz_category":"5"}`), &scalar))

	var sinID QuizRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quiz_category":{"type":"Art"}}`), &sinID))
	assert.ErrorIs(t, sinID.Validate(), domain.ErrInvalidInput)

	assert.ErrorIs(t, QuizRequest{}.Validate(), domain.ErrInvalidInput)
}

func TestSearchQuestionsRequest_Term(t *testing.T) {
	var in SearchQuestionsRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &in))
	assert.Equal(t, "", in.Term())

	assert.Error(t, json.Unmarshal([]byte(`{"searchTerm":[]}`), &in))
}
