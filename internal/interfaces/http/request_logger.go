package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trivia-api/pkg/logger"
)

// RequestLogger registra cada request con su status final. Resuelve los errores de la
// cadena con errHandler para que el status registrado sea el que recibe el cliente.
func RequestLogger(log *logger.Logger, errHandler fiber.ErrorHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := errHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request")
		return nil
	}
}
