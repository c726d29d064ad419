package usecase

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jhoicas/trivia-api/internal/application/dto"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
	"github.com/jhoicas/trivia-api/internal/domain/trivia"
)

// QuizUseCase elige la siguiente pregunta del juego.
type QuizUseCase struct {
	repo repository.QuestionRepository

	mu  sync.Mutex
	rng *rand.Rand
}

// NewQuizUseCase construye el caso de uso. rng nil usa una fuente sembrada con el reloj.
func NewQuizUseCase(repo repository.QuestionRepository, rng *rand.Rand) *QuizUseCase {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	return &QuizUseCase{repo: repo, rng: rng}
}

// Next devuelve una pregunta aleatoria del pool o Question nil si el pool está vacío.
func (uc *QuizUseCase) Next(ctx context.Context, in dto.QuizRequest) (*dto.QuizResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	pool, err := uc.repo.List(ctx, trivia.QuizFilter(in.CategoryID(), in.PreviousIDs()))
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	q, _ := trivia.PickRandom(uc.rng, pool)
	uc.mu.Unlock()

	return &dto.QuizResponse{Question: toQuestionResponse(q)}, nil
}
