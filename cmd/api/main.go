package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/trivia-api/internal/application/usecase"
	"github.com/jhoicas/trivia-api/internal/domain/repository"
	"github.com/jhoicas/trivia-api/internal/infrastructure/memory"
	"github.com/jhoicas/trivia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/trivia-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/trivia-api/internal/interfaces/http"
	"github.com/jhoicas/trivia-api/pkg/config"
	"github.com/jhoicas/trivia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Trivia.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		questionRepo repository.QuestionRepository
		categoryRepo repository.CategoryRepository
	)
	switch cfg.Trivia.Store {
	case config.StoreMemory:
		store := memory.NewStore()
		bank, err := seed.LoadFile(cfg.Trivia.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Trivia.SeedFile).Msg("leer banco de preguntas")
		}
		res, err := usecase.NewSeedUseCase(store).Load(ctx, bank)
		if err != nil {
			log.Fatal().Err(err).Msg("cargar banco en memoria")
		}
		log.Info().Int("categories", res.Categories).Int("questions", res.Questions).Msg("banco cargado en memoria")
		questionRepo, categoryRepo = store.Questions(), store.Categories()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.CreateSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema PostgreSQL")
		}
		questionRepo = postgres.NewQuestionRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	questionUC := usecase.NewQuestionUseCase(questionRepo, categoryRepo, cfg.Trivia.PageSize)
	quizUC := usecase.NewQuizUseCase(questionRepo, nil)

	app := httpRouter.NewApp(httpRouter.AppConfig{Name: cfg.App.Name}, log.Named("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	// contrib/swagger entra en pánico si el archivo no existe.
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Trivia API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger deshabilitado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		CategoryUC: categoryUC,
		QuestionUC: questionUC,
		QuizUC:     quizUC,
		JWTSecret:  cfg.JWT.Secret,
	})
	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: POST/DELETE /questions sin autenticación")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
