package usecase

import (
	"github.com/jhoicas/trivia-api/internal/application/dto"
	"github.com/jhoicas/trivia-api/internal/domain/entity"
)

func toQuestionResponse(q *entity.Question) *dto.QuestionResponse {
	if q == nil {
		return nil
	}
	return &dto.QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func toQuestionResponses(list []*entity.Question) []dto.QuestionResponse {
	items := make([]dto.QuestionResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuestionResponse(q))
	}
	return items
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Type: c.Type}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toCategoryResponse(c))
	}
	return items
}
