package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/jhoicas/trivia-api/pkg/logger"
)

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name                  string
	DisableStartupMessage bool
}

// NewApp construye la aplicación Fiber con JSON (json-iterator), manejo de errores,
// request id, log de requests, recover y CORS abierto.
func NewApp(cfg AppConfig, log *logger.Logger) *fiber.App {
	errHandler := ErrorHandler(log)
	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		ReadTimeout:           time.Second * 10,
		WriteTimeout:          time.Second * 10,
		IdleTimeout:           time.Second * 60,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errHandler,
		DisableStartupMessage: cfg.DisableStartupMessage,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(RequestLogger(log, errHandler))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type,Authorization,true",
		AllowMethods: "GET,PUT,POST,DELETE,OPTIONS",
	}))
	return app
}
