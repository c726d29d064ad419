package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"

	"github.com/jhoicas/trivia-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errInvalidJSON = errors.New("el cuerpo no es JSON válido")

// parseJSON decodifica el cuerpo en out. Un cuerpo que no es JSON es 400; un JSON
// bien formado cuyos campos no encajan en out es 422.
func parseJSON(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if !json.Valid(body) {
		return badRequest(errInvalidJSON)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return unprocessable(fmt.Errorf("%w: %v", domain.ErrUnprocessable, err))
	}
	return nil
}
