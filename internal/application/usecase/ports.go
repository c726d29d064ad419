package usecase

import (
	"context"

	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

// SeedTxRunner ejecuta fn con repositorios atados a una única transacción.
type SeedTxRunner interface {
	RunSeed(ctx context.Context, fn func(
		categories repository.CategoryRepository,
		questions repository.QuestionRepository,
	) error) error
}
