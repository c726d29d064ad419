// seed carga el banco de preguntas XML en PostgreSQL, o exporta el contenido actual
// de la base al mismo formato.
//
// Uso:
//
//	go run ./cmd/seed [ruta/trivia.xml]   carga (por defecto TRIVIA_SEED_FILE)
//	go run ./cmd/seed export > banco.xml  exporta categorías y preguntas
//
// La carga actualiza las categorías y solo inserta preguntas si la tabla está vacía.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/trivia-api/internal/application/usecase"
	"github.com/jhoicas/trivia-api/internal/domain/entity"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
	"github.com/jhoicas/trivia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/trivia-api/internal/infrastructure/seed"
	"github.com/jhoicas/trivia-api/pkg/config"
	"github.com/jhoicas/trivia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr}).Named("seed")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.CreateSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema PostgreSQL")
	}

	if len(os.Args) > 1 && os.Args[1] == "export" {
		bank, err := exportBank(ctx, postgres.NewCategoryRepository(pool), postgres.NewQuestionRepository(pool))
		if err != nil {
			log.Fatal().Err(err).Msg("leer banco")
		}
		if err := seed.Write(os.Stdout, bank); err != nil {
			log.Fatal().Err(err).Msg("escribir XML")
		}
		log.Info().Int("categories", len(bank.Categories)).Int("questions", len(bank.Questions)).Msg("banco exportado")
		return
	}

	path := cfg.Trivia.SeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	bank, err := seed.LoadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("leer banco de preguntas")
	}

	res, err := usecase.NewSeedUseCase(postgres.NewTxRunner(pool)).Load(ctx, bank)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar banco")
	}
	if res.Skipped {
		log.Warn().Int("categories", res.Categories).Msg("la tabla questions ya tiene datos; solo se actualizaron categorías")
		return
	}
	log.Info().Int("categories", res.Categories).Int("questions", res.Questions).Str("file", path).Msg("banco cargado")
}

func exportBank(ctx context.Context, categories repository.CategoryRepository, questions repository.QuestionRepository) (entity.QuestionBank, error) {
	var bank entity.QuestionBank
	cats, err := categories.List(ctx)
	if err != nil {
		return bank, err
	}
	for _, c := range cats {
		bank.Categories = append(bank.Categories, *c)
	}
	qs, err := questions.List(ctx, repository.QuestionFilter{})
	if err != nil {
		return bank, err
	}
	for _, q := range qs {
		bank.Questions = append(bank.Questions, *q)
	}
	return bank, nil
}
