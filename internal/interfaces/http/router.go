package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trivia-api/internal/application/dto"
	"github.com/jhoicas/trivia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	CategoryUC *usecase.CategoryUseCase
	QuestionUC *usecase.QuestionUseCase
	QuizUC     *usecase.QuizUseCase
	JWTSecret  string // vacío = escrituras sin autenticación
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName})
	})

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	questionHandler := NewQuestionHandler(deps.QuestionUC)
	quizHandler := NewQuizHandler(deps.QuizUC)
	admin := AdminAuth(deps.JWTSecret)

	app.Get("/categories", categoryHandler.List)
	app.Get("/categories/:id<int>/questions", questionHandler.ListByCategory)

	app.Get("/questions", questionHandler.List)
	app.Post("/questions", admin, questionHandler.Create)
	app.Post("/questions/search", questionHandler.Search)
	app.Delete("/questions/:id<int>", admin, questionHandler.Delete)

	app.Post("/quizzes", quizHandler.Next)
}
