package messageValidator

import (
	"coursehub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type PostMessageRequest struct {
	Content string `json:"content"`
}

func PostMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PostMessageRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Request body must be valid JSON!")
		}

		reqData.Content = strings.TrimSpace(reqData.Content)
		if reqData.Content == "" {
			return middleware.Message(c, fiber.StatusBadRequest, "Message content must not be empty!")
		}

		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}
