package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
)

// SeedResult resumen de una carga del banco de preguntas.
type SeedResult struct {
	Categories int
	Questions  int
	Skipped    bool // ya había preguntas; solo se actualizaron categorías
}

// SeedUseCase carga un banco de preguntas de forma atómica.
type SeedUseCase struct {
	tx SeedTxRunner
}

// NewSeedUseCase construye el caso de uso.
func NewSeedUseCase(tx SeedTxRunner) *SeedUseCase {
	return &SeedUseCase{tx: tx}
}

// Load guarda las categorías del banco (upsert) e inserta sus preguntas si el almacén
// no tiene ninguna.
func (uc *SeedUseCase) Load(ctx context.Context, bank entity.QuestionBank) (SeedResult, error) {
	var res SeedResult
	err := uc.tx.RunSeed(ctx, func(categories repository.CategoryRepository, questions repository.QuestionRepository) error {
		for i := range bank.Categories {
			c := bank.Categories[i]
			if err := categories.Save(ctx, &c); err != nil {
				return fmt.Errorf("seed category %d: %w", c.ID, err)
			}
			res.Categories++
		}
		n, err := questions.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			res.Skipped = true
			return nil
		}
		for i := range bank.Questions {
			q := bank.Questions[i]
			q.ID = 0
			if err := questions.Create(ctx, &q); err != nil {
				return fmt.Errorf("seed question %q: %w", q.Question, err)
			}
			res.Questions++
		}
		return nil
	})
	if err != nil {
		return SeedResult{}, err
	}
	return res, nil
}
