package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/trivia-api/internal/application/dto"
	"github.com/jhoicas/trivia-api/pkg/logger"
)

// Mensajes fijos por código. El cliente solo ve estos textos; la causa va al log.
var statusMessages = map[int]string{
	fiber.StatusBadRequest:          "bad request",
	fiber.StatusUnauthorized:        "unauthorized",
	fiber.StatusForbidden:           "forbidden",
	fiber.StatusNotFound:            "resource not found",
	fiber.StatusMethodNotAllowed:    "invalid method",
	fiber.StatusConflict:            "duplicate resource",
	fiber.StatusUnprocessableEntity: "unprocessible entity",
	fiber.StatusInternalServerError: "server error",
}

// StatusError asocia un código HTTP a la causa real del fallo.
type StatusError struct {
	Code int
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return statusMessage(e.Code)
	}
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error { return e.Err }

func withStatus(code int, err error) error { return &StatusError{Code: code, Err: err} }

func badRequest(err error) error    { return withStatus(fiber.StatusBadRequest, err) }
func unauthorized(err error) error  { return withStatus(fiber.StatusUnauthorized, err) }
func forbidden(err error) error     { return withStatus(fiber.StatusForbidden, err) }
func notFound(err error) error      { return withStatus(fiber.StatusNotFound, err) }
func unprocessable(err error) error { return withStatus(fiber.StatusUnprocessableEntity, err) }
func internal(err error) error      { return withStatus(fiber.StatusInternalServerError, err) }

func statusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return statusMessages[fiber.StatusInternalServerError]
}

// statusCode extrae el código HTTP de err (StatusError, fiber.Error o 500).
func statusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler devuelve el fiber.ErrorHandler que renderiza {success:false, error, message}.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := statusCode(err)
		if _, known := statusMessages[code]; !known {
			code = fiber.StatusInternalServerError
		}

		ev := log.Warn()
		if code >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Int("status", code).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("request fallido")

		return c.Status(code).JSON(dto.ErrorResponse{
			Success: false,
			Error:   code,
			Message: statusMessage(code),
		})
	}
}
